package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func DialectOf(driverName string) Dialect {
	if driverName == "sqlite" {
		return SQLite
	}
	return Postgres
}

type Repository struct {
	*VocabularyR
	*SessionR
	*RewardR
}

func NewRepository(db QueryI, dialect Dialect) Repository {
	b := base{db: db, dialect: dialect}
	return Repository{
		VocabularyR: &VocabularyR{base: b},
		SessionR:    &SessionR{base: b},
		RewardR:     &RewardR{base: b},
	}
}

type txKey struct{}

// base routes queries through the transaction carried by ctx, if any.
// Queries are written with '?' placeholders and rebound per dialect.
type base struct {
	db      QueryI
	dialect Dialect
}

func (b base) q(ctx context.Context) QueryI {
	if tx, ok := ctx.Value(txKey{}).(QueryI); ok {
		return tx
	}
	return b.db
}

func (b base) rebind(query string) string {
	if b.dialect == Postgres {
		return sqlx.Rebind(sqlx.DOLLAR, query)
	}
	return query
}

// forUpdate locks the selected rows until commit; sqlite serializes writers instead.
func (b base) forUpdate() string {
	if b.dialect == Postgres {
		return " FOR UPDATE"
	}
	return ""
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}

	return false
}

type Transactor struct {
	db *sqlx.DB
}

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx runs fn in one transaction: committed when fn returns nil, rolled back otherwise.
// Nested calls join the outer transaction.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
