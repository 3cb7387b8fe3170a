package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyforge/studyforge/internal/config"
	"github.com/studyforge/studyforge/internal/middleware"
	"github.com/studyforge/studyforge/internal/model"
	"github.com/studyforge/studyforge/internal/pomodoro"
	"github.com/studyforge/studyforge/internal/repository"
	"github.com/studyforge/studyforge/internal/service"
	"github.com/studyforge/studyforge/internal/storage"
)

func newTestMux(t *testing.T) (*http.ServeMux, *service.ProgressService) {
	t.Helper()

	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	progress, err := service.NewProgressService(context.Background(),
		repository.NewSnapshotRepository(storage.NewMemoryStorage(), "test"),
		service.WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)

	pomodoroService := service.NewPomodoroService(progress, config.DefaultTimerSettings())
	reportService := service.NewReportService(progress)

	state := NewStateHandler(progress, pomodoroService)
	progressHandler := NewProgressHandler(progress)
	timer := NewTimerHandler(pomodoroService)
	report := NewReportHandler(reportService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", state.Health)
	mux.HandleFunc("GET /api/state", state.State)
	mux.HandleFunc("GET /api/goals", progressHandler.ListGoals)
	mux.HandleFunc("POST /api/goals", progressHandler.AddGoal)
	mux.HandleFunc("POST /api/goals/{id}/complete", progressHandler.CompleteGoal)
	mux.HandleFunc("GET /api/sessions", progressHandler.ListSessions)
	mux.HandleFunc("GET /api/progress", progressHandler.ListProgress)
	mux.HandleFunc("POST /api/progress", progressHandler.AddProgress)
	mux.HandleFunc("GET /api/stats", progressHandler.Stats)
	mux.HandleFunc("POST /api/streak", progressHandler.ComputeStreak)
	mux.HandleFunc("GET /api/timer", timer.Status)
	mux.HandleFunc("POST /api/timer/start", timer.Start)
	mux.HandleFunc("POST /api/timer/pause", timer.Pause)
	mux.HandleFunc("POST /api/timer/resume", timer.Resume)
	mux.HandleFunc("POST /api/timer/toggle", timer.Toggle)
	mux.HandleFunc("POST /api/timer/reset", timer.Reset)
	mux.HandleFunc("GET /api/report", report.Report)
	return mux, progress
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAddGoal(t *testing.T) {
	mux, progress := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/goals", `{"subject":"  Biology ","target":"finish ch.3","timeAvailable":60}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var goal model.Goal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goal))
	assert.Equal(t, "Biology", goal.Subject)
	assert.Equal(t, 60, goal.TimeAvailable)
	assert.False(t, goal.Completed)
	assert.Len(t, progress.Goals(), 1)
}

func TestAddGoalRejectsBlankSubject(t *testing.T) {
	mux, progress := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/goals", `{"subject":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"subject is required"}`, rec.Body.String())
	assert.Empty(t, progress.Goals())
}

func TestAddGoalRejectsMalformedBody(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/goals", `{"subject":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, mux, http.MethodPost, "/api/goals", `{"subject":"Math","owner":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteGoal(t *testing.T) {
	mux, progress := newTestMux(t)
	goal, err := progress.AddGoal(context.Background(), "Chemistry", "", 30)
	require.NoError(t, err)

	rec := do(t, mux, http.MethodPost, "/api/goals/"+goal.ID+"/complete", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, progress.Goals()[0].Completed)

	rec = do(t, mux, http.MethodPost, "/api/goals/unknown/complete", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListGoalsEmptyIsArray(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/goals", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddProgressAndStreak(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/progress", `{"goal":"Read ch.4","timeSpent":45,"completed":true,"nextSteps":"ch.5"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var record model.ProgressRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "2026-10-19", record.Date)
	assert.Equal(t, 45, record.TimeSpent)

	rec = do(t, mux, http.MethodPost, "/api/streak", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"currentStreak":1}`, rec.Body.String())

	rec = do(t, mux, http.MethodGet, "/api/progress", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var records []model.ProgressRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 1)
}

func TestAddProgressRejectsNegativeMinutes(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/progress", `{"goal":"Read","timeSpent":-5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStats(t *testing.T) {
	mux, progress := newTestMux(t)
	_, err := progress.AddProgressRecord(context.Background(), "Read", 90, true, "")
	require.NoError(t, err)

	rec := do(t, mux, http.MethodGet, "/api/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		TotalMinutes int     `json:"totalMinutes"`
		TotalHours   float64 `json:"totalHours"`
		Subjects     []any   `json:"subjects"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 90, body.TotalMinutes)
	assert.InDelta(t, 1.5, body.TotalHours, 0.001)
	assert.NotNil(t, body.Subjects)
}

func TestTimerLifecycle(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/timer/start", `{"subject":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, mux, http.MethodPost, "/api/timer/start", `{"subject":"Math"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var status pomodoro.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, pomodoro.StateFocus, status.State)
	assert.True(t, status.Running)
	assert.Equal(t, 1500, status.Remaining)
	assert.Equal(t, "Math", status.Subject)

	rec = do(t, mux, http.MethodPost, "/api/timer/pause", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Running)

	rec = do(t, mux, http.MethodPost, "/api/timer/resume", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Running)
	assert.Equal(t, "Math", status.Subject)

	rec = do(t, mux, http.MethodPost, "/api/timer/toggle", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Running)

	rec = do(t, mux, http.MethodPost, "/api/timer/toggle", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Running)

	rec = do(t, mux, http.MethodPost, "/api/timer/reset", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Running)
	assert.Equal(t, 1500, status.Remaining)

	rec = do(t, mux, http.MethodGet, "/api/timer", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestState(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/state", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, key := range []string{"goals", "pomodoroSessions", "progressRecords", "currentStreak", "stats", "timer"} {
		assert.Contains(t, body, key)
	}
}

func TestReport(t *testing.T) {
	mux, progress := newTestMux(t)
	_, err := progress.AddGoal(context.Background(), "Biology", "finish ch.3", 60)
	require.NoError(t, err)

	rec := do(t, mux, http.MethodGet, "/api/report?format=md", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, rec.Body.String(), "Biology")

	rec = do(t, mux, http.MethodGet, "/api/report", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<title>StudyForge study review</title>")
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestReportUsesRequestConfig(t *testing.T) {
	mux, _ := newTestMux(t)
	cfg := &config.Config{AppName: "Exam Prep", AppEnv: "production"}
	h := middleware.Config(cfg)(mux)

	rec := do(t, h, http.MethodGet, "/api/report", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Exam Prep study review</title>")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	rec = do(t, h, http.MethodGet, "/api/report?format=md", "")
	assert.Contains(t, rec.Body.String(), `title: "Exam Prep study review"`)
}
