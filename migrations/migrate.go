// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

// dialectDirs maps a goose dialect to its migrations directory.
var dialectDirs = map[string]string{
	"sqlite3":  "sqlite",
	"postgres": "postgres",
}

// Migrate applies all pending migrations for dialect ("sqlite3" or
// "postgres") to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("db is nil")
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
