package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mlutsenko/chirp/internal/config"
	"github.com/mlutsenko/chirp/internal/logger"
	"github.com/mlutsenko/chirp/migrations"
)

// DB wraps the shared *sql.DB handle together with the dialect it was opened
// with. Both repositories hold a *DB; the handle is safe for concurrent use.
type DB struct {
	*sql.DB

	dialect string
	logger  *logger.Logger
}

// NewConnect opens the database the configuration names. The driver value
// has already been validated by the config layer.
func NewConnect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch cfg.DB.Driver {
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg.DB, log)
	case "pgx":
		return NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
}

// Migrate applies all embedded goose migrations for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// postgresError returns the PostgreSQL error code carried by err, or an
// empty string when err did not originate from the pgx driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueViolation reports whether err is a unique-constraint violation on
// either supported backend. The sqlite3 driver exposes no stable error code
// type through database/sql, hence the message match.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
