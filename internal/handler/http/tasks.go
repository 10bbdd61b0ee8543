package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-tracker/internal/app"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

// All task handlers run behind auth; the owner is always taken from the
// verified claims and never from the request body.

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	tasks, err := h.services.TaskService.ListTasks(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, userID, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("task_id", task.TaskID).Msg("task created")
	utils.WriteMessage(w, app.MsgTaskAdded, http.StatusCreated)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	task, err := h.services.TaskService.GetTask(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var upd models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.TaskService.UpdateTask(ctx, userID, chi.URLParam(r, "id"), upd); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgTaskUpdated, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.services.TaskService.DeleteTask(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgTaskDeleted, http.StatusOK)
}
