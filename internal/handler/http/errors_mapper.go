package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/app"
	"github.com/MKhiriev/go-task-tracker/internal/service"
	"github.com/MKhiriev/go-task-tracker/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses lists the known failures in matching order. Anything else is
// answered with 500 and the error text.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrEmailAlreadyRegistered, errorResponse{http.StatusBadRequest, app.MsgEmailAlreadyRegistered}},
	{store.ErrEmailAlreadyExists, errorResponse{http.StatusBadRequest, app.MsgEmailAlreadyRegistered}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusBadRequest, app.MsgInvalidEmailOrPassword}},
	{service.ErrNoUserID, errorResponse{http.StatusUnauthorized, app.MsgAccessDenied}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenExpired}},
	{service.ErrTokenIsInvalid, errorResponse{http.StatusUnauthorized, app.MsgInvalidToken}},
	{service.ErrTaskNotFound, errorResponse{http.StatusNotFound, app.MsgTaskNotFound}},
	{store.ErrTaskNotFound, errorResponse{http.StatusNotFound, app.MsgTaskNotFound}},
	{store.ErrDatabaseUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgDatabaseUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, err.Error()}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
