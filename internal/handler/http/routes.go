package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader, rateLimitLimitHeader, rateLimitRemainingHeader, rateLimitResetHeader},
		MaxAge:         300,
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/health", h.health)
	router.Handle("/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/validateJWT", h.validateJWT)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.listTasks)
				r.Post("/", h.createTask)
				r.Get("/{id}", h.getTask)
				r.Put("/{id}", h.updateTask)
				r.Delete("/{id}", h.deleteTask)
			})
		})
	})

	return router
}
