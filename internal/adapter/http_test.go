// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"http://localhost:5000", "http://localhost:5000", false},
		{"localhost:5000", "http://localhost:5000", false},
		{"  https://tasks.example.com/  ", "https://tasks.example.com", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InitialToken(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:5000", Token: " abc "}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "abc", a.Token())

	_, err = NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestSignup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/signup", r.URL.Path)

		var req models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"}, req)

		writeJSON(t, w, http.StatusCreated, models.MessageResponse{Message: "User registered successfully"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Signup(context.Background(), models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"})
	assert.NoError(t, err)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Email already registered"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Signup(context.Background(), models.SignupRequest{})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorContains(t, err, "Email already registered")
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: "Login successfully", Token: "jwt-token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, "jwt-token", a.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: "Login successfully"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestValidateToken_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer jwt-token" {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Access Denied"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Valid JWT"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	err := a.ValidateToken(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "Access Denied")

	a.SetToken("jwt-token")
	assert.NoError(t, a.ValidateToken(context.Background()))
}

// ── tasks ───────────────────────────────────────────────────────────────────

func TestTasks(t *testing.T) {
	stored := models.Task{TaskID: "t-1", Title: "Write report", Status: "Pending", DueDate: "2026-11-01", UserID: "u-1"}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Task{stored})
	})
	mux.HandleFunc("POST /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateTaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Write report", req.Title)
		writeJSON(t, w, http.StatusCreated, models.MessageResponse{Message: "Task added successfully"})
	})
	mux.HandleFunc("GET /api/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != stored.TaskID {
			writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
			return
		}
		writeJSON(t, w, http.StatusOK, stored)
	})
	mux.HandleFunc("PUT /api/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		var upd map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&upd))
		assert.Equal(t, map[string]string{"status": "Done"}, upd, "empty fields are omitted")
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Task updated successfully"})
	})
	mux.HandleFunc("DELETE /api/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a b/c", r.PathValue("id"))
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	tasks, err := a.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Task{stored}, tasks)

	require.NoError(t, a.CreateTask(ctx, models.CreateTaskRequest{Title: "Write report"}))

	task, err := a.GetTask(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, stored, task)

	_, err = a.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, a.UpdateTask(ctx, "t-1", models.TaskUpdate{Status: "Done"}))

	err = a.DeleteTask(ctx, "a b/c")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── info ────────────────────────────────────────────────────────────────────

func TestVersionAndHealth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "v1.0.0", Date: "2026-10-01", Commit: "abc"})
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "database unavailable"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	version, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", version.Version)

	assert.ErrorIs(t, a.Health(context.Background()), ErrServiceUnavailable)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{http.StatusBadRequest, `{"error":"Invalid email or password"}`, ErrBadRequest, "Invalid email or password"},
		{http.StatusUnauthorized, `{"error":"Token expired"}`, ErrUnauthorized, "Token expired"},
		{http.StatusNotFound, `{"error":"Task not found"}`, ErrNotFound, "Task not found"},
		{http.StatusTooManyRequests, `{"error":"Too many requests"}`, ErrTooManyRequests, "Too many requests"},
		{http.StatusInternalServerError, "plain failure", ErrInternalServerError, "plain failure"},
		{http.StatusTeapot, "", nil, "http 418: I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Health(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRequest_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).ListTasks(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
