package http

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tracker/internal/app"
	"github.com/MKhiriev/go-task-tracker/internal/ratelimit"
	"github.com/MKhiriev/go-task-tracker/models"
)

func TestRateLimit_Credentials(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(2, time.Minute)
	t.Cleanup(func() { _ = limiter.Close() })

	h, m := newTestHandler(t, limiter)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, nil).Times(2)
	router := h.Init()

	login := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	// the body is empty, so the handler answers 400 before calling Login
	rec := login("10.0.0.1:1234")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "2", rec.Header().Get(rateLimitLimitHeader))
	assert.Equal(t, "1", rec.Header().Get(rateLimitRemainingHeader))

	rec = login("10.0.0.1:1235")
	assert.Equal(t, "0", rec.Header().Get(rateLimitRemainingHeader))

	rec = login("10.0.0.1:1236")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, app.MsgTooManyRequests, decodeBody[models.ErrorResponse](t, rec).Error)
	retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Positive(t, retryAfter)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.rateLimitHits.WithLabelValues("/api/login")))

	// other clients keep their own budget
	for _, addr := range []string{"10.0.0.2:1", "10.0.0.3:1"} {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@b.c","password":"p"}`))
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_TaskRoutesAreNotLimited(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(1, time.Minute)
	t.Cleanup(func() { _ = limiter.Close() })

	h, m := newTestHandler(t, limiter)
	m.expectValidToken("user-1")
	m.tasks.EXPECT().ListTasks(gomock.Any(), "user-1").Return(nil, nil).Times(3)
	router := h.Init()

	for i := 0; i < 3; i++ {
		rec := doRequest(t, router, http.MethodGet, "/api/tasks", nil, testToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(rateLimitLimitHeader))
	}
}

func TestRateLimit_ForwardedClientIP(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(1, time.Minute)
	t.Cleanup(func() { _ = limiter.Close() })

	h, _ := newTestHandler(t, limiter)
	router := h.Init()

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader("x"))
		req.RemoteAddr = "192.168.0.1:5555"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusBadRequest, send("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
	assert.Equal(t, http.StatusBadRequest, send("203.0.113.8"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "10.1.2.3:4567"
	assert.Equal(t, "10.1.2.3", clientIP(req))

	req.RemoteAddr = "10.1.2.3"
	assert.Equal(t, "10.1.2.3", clientIP(req))

	req.RemoteAddr = "[::1]:80"
	assert.Equal(t, "::1", clientIP(req))
}
