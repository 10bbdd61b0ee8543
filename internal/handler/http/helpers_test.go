package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/mock"
	"github.com/MKhiriev/go-task-tracker/internal/ratelimit"
	"github.com/MKhiriev/go-task-tracker/internal/service"
	"github.com/MKhiriev/go-task-tracker/models"
)

const testToken = "valid-token"

type testMocks struct {
	auth    *mock.MockAuthService
	tasks   *mock.MockTaskService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, limiter ratelimit.Limiter) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		tasks:   mock.NewMockTaskService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    m.auth,
		TaskService:    m.tasks,
		AppInfoService: m.appInfo,
	}
	cfg := config.Server{CORSAllowedOrigins: []string{"*"}}

	return NewHandler(services, limiter, cfg, logger.Nop()), m
}

// expectValidToken makes the auth mock accept testToken for userID.
func (m testMocks) expectValidToken(userID string) {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{Claims: models.Claims{UserID: userID, Email: userID + "@example.com"}}, nil).
		AnyTimes()
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
