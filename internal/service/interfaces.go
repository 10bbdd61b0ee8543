package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService manages tasks on behalf of an authenticated user. Every
// operation is scoped to userID; tasks of other users behave as missing.
type TaskService interface {
	CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, upd models.TaskUpdate) error
	DeleteTask(ctx context.Context, userID, taskID string) error
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
	// Health reports whether the service dependencies are reachable.
	Health(ctx context.Context) error
}

// Pinger is implemented by dependencies that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
