package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

func newMockDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	classifier := ErrorClassificator(NewSQLiteErrorClassifier())
	if dialect == DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{DB: db, dialect: dialect, errorClassificator: classifier, logger: logger.Nop()}, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
