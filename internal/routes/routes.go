package routes

import (
	"context"
	"net/http"

	"github.com/studyforge/studyforge/internal/app"
	"github.com/studyforge/studyforge/internal/handler"
	"github.com/studyforge/studyforge/internal/middleware"
)

// SetupRoutes builds the API handler. Background work started here, such as
// the rate limiter sweeper, stops when ctx is done.
func SetupRoutes(ctx context.Context, app *app.App) http.Handler {
	// Handlers
	state := handler.NewStateHandler(app.ProgressService, app.PomodoroService)
	progress := handler.NewProgressHandler(app.ProgressService)
	timer := handler.NewTimerHandler(app.PomodoroService)
	report := handler.NewReportHandler(app.ReportService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", state.Health)
	mux.HandleFunc("GET /api/state", state.State)

	// Progress store
	mux.HandleFunc("GET /api/goals", progress.ListGoals)
	mux.HandleFunc("POST /api/goals", progress.AddGoal)
	mux.HandleFunc("POST /api/goals/{id}/complete", progress.CompleteGoal)
	mux.HandleFunc("GET /api/sessions", progress.ListSessions)
	mux.HandleFunc("GET /api/progress", progress.ListProgress)
	mux.HandleFunc("POST /api/progress", progress.AddProgress)
	mux.HandleFunc("GET /api/stats", progress.Stats)
	mux.HandleFunc("POST /api/streak", progress.ComputeStreak)

	// Session timer
	mux.HandleFunc("GET /api/timer", timer.Status)
	mux.HandleFunc("POST /api/timer/start", timer.Start)
	mux.HandleFunc("POST /api/timer/pause", timer.Pause)
	mux.HandleFunc("POST /api/timer/resume", timer.Resume)
	mux.HandleFunc("POST /api/timer/toggle", timer.Toggle)
	mux.HandleFunc("POST /api/timer/reset", timer.Reset)

	// Weekly review
	mux.HandleFunc("GET /api/report", report.Report)

	// Apply global middleware
	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Config(app.Cfg),
		middleware.RateLimitWrites(ctx, middleware.RateLimitOptions{
			Limit:      app.Cfg.RateLimit,
			Window:     app.Cfg.RateLimitWindow,
			TrustProxy: app.Cfg.TrustProxy,
		}),
	)
}
