package validators

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTitle    = "title"
)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.CreateTaskRequest:
		return v.validateCreateTaskRequest(value, fields...)
	case *models.CreateTaskRequest:
		return v.validateCreateTaskRequest(*value, fields...)

	// every field of an update is optional
	case models.TaskUpdate, *models.TaskUpdate:
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignupRequest(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if req.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateTaskRequest(req models.CreateTaskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if req.Title == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
