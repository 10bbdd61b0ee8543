package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with the given email or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TaskRepository persists tasks. Every method is scoped to the owning user.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) error
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	// GetTask returns [ErrTaskNotFound] when no task matches both ids.
	GetTask(ctx context.Context, taskID, userID string) (models.Task, error)
	// UpdateTask overwrites the mutable fields of the matching task.
	// Updating a task that no longer exists is not an error.
	UpdateTask(ctx context.Context, task models.Task) error
	// DeleteTask returns [ErrTaskNotFound] when nothing was deleted.
	DeleteTask(ctx context.Context, taskID, userID string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
