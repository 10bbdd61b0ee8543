package http

import (
	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/ratelimit"
	"github.com/MKhiriev/go-task-tracker/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  ratelimit.Limiter
	metrics  *metrics

	cfg    config.Server
	logger *logger.Logger
}

// NewHandler wires the services into an HTTP handler. A nil limiter disables
// rate limiting of the credential endpoints.
func NewHandler(services *service.Services, limiter ratelimit.Limiter, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		metrics:  newMetrics(),
		cfg:      cfg,
		logger:   logger,
	}
}
