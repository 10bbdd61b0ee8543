// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side API of the task tracker server.
//
// [ServerAdapter] decouples command-line code from the transport. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on
// resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors of
// errors.go so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). The server's {"error": ...} message is kept in
// the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the task tracker server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Signup registers a new account. It does not log in.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// ValidateToken asks the server whether the stored token is still valid.
	ValidateToken(ctx context.Context) error

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, req models.CreateTaskRequest) error
	GetTask(ctx context.Context, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, taskID string, upd models.TaskUpdate) error
	DeleteTask(ctx context.Context, taskID string) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)

	// Health reports whether the server and its database answer.
	Health(ctx context.Context) error
}
