// Package migrations ships the schema of the user directory as embedded
// goose SQL files, applied automatically on startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schemaFS embed.FS

// Migrate brings the connected database up to the latest embedded schema
// version. It is idempotent: already-applied versions are skipped.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(schemaFS)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("selecting migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("applying schema migrations: %w", err)
	}

	return nil
}
