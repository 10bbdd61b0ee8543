package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

// Storages bundles the repositories sharing one database connection.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository

	db *DB
}

// NewStorages connects to the database described by cfg, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("dialect", db.Dialect()).Msg("database migrated")

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
		db:             db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
