package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/studyforge/studyforge/internal/ctxkeys"
	"github.com/studyforge/studyforge/internal/service"
	"github.com/studyforge/studyforge/internal/ui"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Report serves the weekly review as HTML, or as markdown with ?format=md.
// Outside development the review is never cached.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	cfg := ctxkeys.Config(r.Context())
	appName := appNameFrom(r.Context())
	if cfg != nil && !cfg.IsDevelopment() {
		w.Header().Set("Cache-Control", "no-store")
	}

	if r.URL.Query().Get("format") == "md" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write(h.reportService.Markdown(appName))
		return
	}

	report, err := h.reportService.Render(appName)
	if err != nil {
		slog.Error("failed to render report", "error", err, "request_id", ctxkeys.RequestID(r.Context()))
		http.Error(w, "Failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	ui.Render(w, r, ui.ReportPage(report.Title, report.Body))
}

func appNameFrom(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
		return cfg.AppName
	}
	return service.DefaultAppName
}
