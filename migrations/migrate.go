package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// Migrate applies all embedded migrations for the given dialect. dialect is
// the database/sql driver name the connection was opened with ("pgx" or
// "sqlite3"); each dialect carries its own DDL since identity columns differ
// between the two backends.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir, err := migrationsDir(dialect)
	if err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect string) (string, error) {
	switch dialect {
	case "pgx", "postgres":
		return "postgres", nil
	case "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}
}
