package handler

import (
	"net/http"

	"github.com/studyforge/studyforge/internal/model"
	"github.com/studyforge/studyforge/internal/service"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

type addGoalRequest struct {
	Subject       string `json:"subject"`
	Target        string `json:"target"`
	TimeAvailable int    `json:"timeAvailable"`
}

type addProgressRequest struct {
	Goal      string `json:"goal"`
	TimeSpent int    `json:"timeSpent"`
	Completed bool   `json:"completed"`
	NextSteps string `json:"nextSteps"`
}

type statsResponse struct {
	model.Stats
	Subjects []model.SubjectTotal `json:"subjects"`
}

type streakResponse struct {
	CurrentStreak int `json:"currentStreak"`
}

func (h *ProgressHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.progressService.Goals())
}

func (h *ProgressHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	var req addGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	goal, err := h.progressService.AddGoal(r.Context(), req.Subject, req.Target, req.TimeAvailable)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

// CompleteGoal answers 204 whether or not the id exists.
func (h *ProgressHandler) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.progressService.CompleteGoal(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProgressHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.progressService.Sessions())
}

func (h *ProgressHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.progressService.Records())
}

func (h *ProgressHandler) AddProgress(w http.ResponseWriter, r *http.Request) {
	var req addProgressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.progressService.AddProgressRecord(r.Context(), req.Goal, req.TimeSpent, req.Completed, req.NextSteps)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *ProgressHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsResponse{
		Stats:    h.progressService.Stats(),
		Subjects: h.progressService.SubjectTotals(),
	})
}

func (h *ProgressHandler) ComputeStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.progressService.ComputeStreak(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, streakResponse{CurrentStreak: streak})
}
