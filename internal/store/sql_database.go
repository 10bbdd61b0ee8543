package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/migrations"
)

// Dialects understood by [DB].
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// retryDelays are the waits between attempts of a retryable write.
var retryDelays = []time.Duration{50 * time.Millisecond, 150 * time.Millisecond}

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg: PostgreSQL for
// postgres:// URLs, SQLite otherwise.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver() {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the SQL dialect of the underlying connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// builder returns a squirrel statement builder with placeholders matching
// the dialect.
func (db *DB) builder() squirrel.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// rebind converts a query written with "?" placeholders to the dialect.
func (db *DB) rebind(query string) string {
	if db.dialect != DialectPostgres {
		return query
	}

	rebound, err := squirrel.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return query
	}
	return rebound
}

// withRetry runs op and repeats it while the error is classified as
// [Retryable] and the context is alive.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || db.errorClassificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Dur("delay", delay).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}

		if err = op(); err == nil {
			return nil
		}
	}

	return err
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}
