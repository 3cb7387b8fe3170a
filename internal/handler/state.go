package handler

import (
	"net/http"

	"github.com/studyforge/studyforge/internal/model"
	"github.com/studyforge/studyforge/internal/pomodoro"
	"github.com/studyforge/studyforge/internal/service"
)

type StateHandler struct {
	progressService *service.ProgressService
	pomodoroService *service.PomodoroService
}

func NewStateHandler(progressService *service.ProgressService, pomodoroService *service.PomodoroService) *StateHandler {
	return &StateHandler{
		progressService: progressService,
		pomodoroService: pomodoroService,
	}
}

type stateResponse struct {
	model.Snapshot
	Stats model.Stats     `json:"stats"`
	Timer pomodoro.Status `json:"timer"`
}

func (h *StateHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// State returns everything a dashboard needs in one call.
func (h *StateHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateResponse{
		Snapshot: h.progressService.Snapshot(),
		Stats:    h.progressService.Stats(),
		Timer:    h.pomodoroService.Status(),
	})
}
