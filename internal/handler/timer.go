package handler

import (
	"net/http"

	"github.com/studyforge/studyforge/internal/service"
)

type TimerHandler struct {
	pomodoroService *service.PomodoroService
}

func NewTimerHandler(pomodoroService *service.PomodoroService) *TimerHandler {
	return &TimerHandler{
		pomodoroService: pomodoroService,
	}
}

type startTimerRequest struct {
	Subject string `json:"subject"`
}

func (h *TimerHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pomodoroService.Status())
}

func (h *TimerHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startTimerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	status, err := h.pomodoroService.Start(req.Subject)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *TimerHandler) Pause(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pomodoroService.Pause())
}

func (h *TimerHandler) Resume(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pomodoroService.Resume())
}

func (h *TimerHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pomodoroService.Toggle())
}

func (h *TimerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pomodoroService.Reset())
}
