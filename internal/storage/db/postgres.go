package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/seb0305/aenigma-verborum/internal/config"

	"github.com/jmoiron/sqlx"
)

const (
	pingAttempts = 5
	pingTimeout  = 5 * time.Second
)

// postgresDSN prefers DATABASE_URL and falls back to the discrete conn settings.
func postgresDSN(cfg config.DBConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL)
}

func initPostgres(cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", postgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}
	configurePool(db, cfg.Cfg)

	if err := pingWithRetry(db, pingAttempts, time.Second); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func configurePool(db *sqlx.DB, cfg config.DBCfg) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
}

// pingWithRetry doubles the wait after every failed attempt.
func pingWithRetry(db *sqlx.DB, attempts int, wait time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(wait)
			wait *= 2
		}

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = db.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed db ping after %d attempts: %w", attempts, err)
}
