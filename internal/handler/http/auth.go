package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-task-tracker/internal/app"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	utils.WriteMessage(w, app.MsgUserRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("user_id", token.Claims.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Message: app.MsgLoginSuccessful, Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) validateJWT(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgValidJWT, http.StatusOK)
}

// writeServiceError answers with the status and message mapped from err.
// Unexpected errors are logged together with the failing route.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteError(w, resp.message, resp.status)
}
