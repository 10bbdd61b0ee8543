package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/app"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppBuildInfo(r.Context())

	utils.WriteJSON(w, info.VersionResponse(), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Health(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		utils.WriteError(w, app.MsgDatabaseUnavailable, http.StatusServiceUnavailable)
		return
	}

	utils.WriteMessage(w, app.MsgHealthy, http.StatusOK)
}
