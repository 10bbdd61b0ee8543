package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalLogger "github.com/MKhiriev/go-task-tracker/internal/logger"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &internalLogger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when absent", "", false},
		{"kept from request", "trace-123", true},
		{"replaced when too long", strings.Repeat("x", maxTraceIDLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				internalLogger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			if tt.keep {
				assert.Equal(t, tt.incoming, traceID)
			} else {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, traceID, entry["trace_id"])
		})
	}
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Task added successfully"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/tasks?x=1", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/api/tasks?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, len(`{"message":"Task added successfully"}`), entry["size"])
	assert.NotEmpty(t, entry["trace_id"])
}

func TestWithLogging_ServerErrorsLogAsError(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)

	w.WriteHeader(http.StatusTeapot)
	w.Write([]byte(" world"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 11, w.size)
	assert.Same(t, rec, w.Unwrap())
}
