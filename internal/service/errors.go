package service

import "errors"

// Validation errors. The HTTP layer answers them with 400.
var (
	ErrInvalidDataProvided    = errors.New("invalid data provided")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoUserID           = errors.New("no user ID was given")
)

// Authentication errors. The HTTP layer answers them with 401.
var (
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
)

var (
	// ErrTaskNotFound is returned for a missing task and for a task owned by
	// another user alike.
	ErrTaskNotFound = errors.New("task not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
