package http

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-task-tracker/internal/app"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
)

const (
	rateLimitLimitHeader     = "X-RateLimit-Limit"
	rateLimitRemainingHeader = "X-RateLimit-Remaining"
	rateLimitResetHeader     = "X-RateLimit-Reset"
)

// withRateLimit counts requests per client IP and answers 429 once the
// configured budget of the current window is spent.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := clientIP(r)
		decision := h.limiter.Allow(r.Context(), "ip:"+key)

		if decision.Limit > 0 {
			w.Header().Set(rateLimitLimitHeader, strconv.Itoa(decision.Limit))
			w.Header().Set(rateLimitRemainingHeader, strconv.Itoa(decision.Remaining()))
			w.Header().Set(rateLimitResetHeader, strconv.FormatInt(decision.ResetAt.Unix(), 10))
		}

		if !decision.Allowed {
			h.metrics.rateLimitHits.WithLabelValues(r.URL.Path).Inc()
			logger.FromRequest(r).Warn().Str("client_ip", key).Int("count", decision.Count).Msg("rate limit exceeded")

			retryAfter := int(time.Until(decision.ResetAt).Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
			utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr, which middleware.RealIP has
// already replaced with X-Forwarded-For / X-Real-IP when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
