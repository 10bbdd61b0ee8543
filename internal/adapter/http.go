package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. adapterCfg.HTTPAddress may omit the scheme, in which case
// http is assumed. adapterCfg.Token, when set, is used as the initial bearer
// token.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup POSTs the new account to /api/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login POSTs the credentials to /api/login and keeps the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&loginResp).
		Post("/api/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if loginResp.Token == "" {
		return "", ErrEmptyToken
	}

	h.SetToken(loginResp.Token)
	h.logger.Debug().Msg("logged in, token stored")

	return loginResp.Token, nil
}

func (h *httpServerAdapter) ValidateToken(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/api/validateJWT")
	if err != nil {
		return fmt.Errorf("validate token request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	resp, err := h.authedRequest(ctx).Get("/api/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, fmt.Errorf("decode list tasks response: %w", err)
	}

	return tasks, nil
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, req models.CreateTaskRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/tasks")
	if err != nil {
		return fmt.Errorf("create task request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	var task models.Task

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", taskID).
		SetResult(&task).
		Get("/api/tasks/{id}")
	if err != nil {
		return models.Task{}, fmt.Errorf("get task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// UpdateTask PUTs the non-empty fields of upd. Empty fields keep the stored
// values on the server.
func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID string, upd models.TaskUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", taskID).
		SetBody(upd).
		Put("/api/tasks/{id}")
	if err != nil {
		return fmt.Errorf("update task request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", taskID).
		Delete("/api/tasks/{id}")
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
