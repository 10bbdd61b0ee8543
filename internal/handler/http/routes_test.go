package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tracker/internal/app"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/models"
)

func TestNewHandler(t *testing.T) {
	h1, _ := newTestHandler(t, nil)
	h2, _ := newTestHandler(t, nil)

	require.NotNil(t, h1.metrics)
	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
	assert.Nil(t, h1.limiter)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/signup"},
		{http.MethodPost, "/api/login"},
		{http.MethodGet, "/api/validateJWT"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodGet, "/api/tasks/some-id"},
		{http.MethodPut, "/api/tasks/some-id"},
		{http.MethodDelete, "/api/tasks/some-id"},
	}

	h, _ := newTestHandler(t, nil)
	router := h.Init()

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// protected routes answer 401 and the credential routes 400 on an
			// empty body; either proves the route exists
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/nonexistent", nil, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusNotFound), decodeBody[models.ErrorResponse](t, rec).Error)
}

func TestInit_WrongMethod(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := doRequest(t, h.Init(), http.MethodPatch, "/api/signup", nil, "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusMethodNotAllowed), decodeBody[models.ErrorResponse](t, rec).Error)
}

func TestInit_CORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_Panics(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.expectValidToken("user-1")
	m.tasks.EXPECT().ListTasks(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string) ([]models.Task, error) { panic("boom") },
	)

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/tasks", nil, testToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestVersion(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.appInfo.EXPECT().GetAppBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"))

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/version", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.VersionResponse{Version: "v1.2.3", Date: "2026-10-01", Commit: "abc123"}, decodeBody[models.VersionResponse](t, rec))
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		m.appInfo.EXPECT().Health(gomock.Any()).Return(nil)

		rec := doRequest(t, h.Init(), http.MethodGet, "/health", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, app.MsgHealthy, decodeBody[models.MessageResponse](t, rec).Message)
	})

	t.Run("database down", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		m.appInfo.EXPECT().Health(gomock.Any()).Return(store.ErrDatabaseUnavailable)

		rec := doRequest(t, h.Init(), http.MethodGet, "/health", nil, "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, app.MsgDatabaseUnavailable, decodeBody[models.ErrorResponse](t, rec).Error)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.expectValidToken("user-1")
	m.tasks.EXPECT().GetTask(gomock.Any(), "user-1", gomock.Any()).Return(models.Task{}, nil).Times(2)
	router := h.Init()

	doRequest(t, router, http.MethodGet, "/api/tasks/a", nil, testToken)
	doRequest(t, router, http.MethodGet, "/api/tasks/b", nil, testToken)

	rec := doRequest(t, router, http.MethodGet, "/metrics", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `task_tracker_http_requests_total{method="GET",route="/api/tasks/{id}",status="200"} 2`)
	assert.Contains(t, body, "task_tracker_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"duplicate email from store", store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyRegistered},
		{"task not found from store", errors.Join(errors.New("ctx"), store.ErrTaskNotFound), http.StatusNotFound, app.MsgTaskNotFound},
		{"database unavailable", store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgDatabaseUnavailable},
		{"unknown", errors.New("SQLITE_ERROR: no such table"), http.StatusInternalServerError, "SQLITE_ERROR: no such table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantMsg, resp.message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}
