package db

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/seb0305/aenigma-verborum/internal/config"
)

//go:embed schema/*.sql
var schemas embed.FS

// InitDB connects to the configured driver and applies the schema.
func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Driver {
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "latin_vocab.db"
		}
		db, err = OpenSQLite(path)
	default:
		db, err = initPostgres(cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates missing tables for the connection's driver.
func Migrate(db *sqlx.DB) error {
	file := "schema/postgres.sql"
	if db.DriverName() == "sqlite" {
		file = "schema/sqlite.sql"
	}

	ddl, err := schemas.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed read schema %s: %w", file, err)
	}

	if _, err := db.Exec(string(ddl)); err != nil {
		return fmt.Errorf("failed apply schema: %w", err)
	}

	return nil
}
