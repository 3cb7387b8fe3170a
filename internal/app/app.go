package app

import (
	"context"
	"fmt"
	"io"

	"github.com/studyforge/studyforge/internal/config"
	"github.com/studyforge/studyforge/internal/repository"
	"github.com/studyforge/studyforge/internal/service"
	"github.com/studyforge/studyforge/internal/storage"
)

type App struct {
	Cfg             *config.Config
	Storage         storage.Storage
	ProgressService *service.ProgressService
	PomodoroService *service.PomodoroService
	ReportService   *service.ReportService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Storage
	store, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return NewWithStorage(ctx, cfg, store)
}

// NewWithStorage wires the services on top of an already opened backend.
func NewWithStorage(ctx context.Context, cfg *config.Config, store storage.Storage) (*App, error) {
	// Repositories
	snapshotRepository := repository.NewSnapshotRepository(store, cfg.StoreKey)

	// Services
	progressService, err := service.NewProgressService(ctx, snapshotRepository)
	if err != nil {
		closeStorage(store)
		return nil, err
	}

	timerSettings, err := config.LoadTimerSettings(cfg.TimerConfigPath)
	if err != nil {
		closeStorage(store)
		return nil, fmt.Errorf("failed to load timer settings: %w", err)
	}

	pomodoroService := service.NewPomodoroService(progressService, timerSettings)
	reportService := service.NewReportService(progressService)

	return &App{
		Cfg:             cfg,
		Storage:         store,
		ProgressService: progressService,
		PomodoroService: pomodoroService,
		ReportService:   reportService,
	}, nil
}

func (a *App) Close() error {
	return closeStorage(a.Storage)
}

func closeStorage(store storage.Storage) error {
	if closer, ok := store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
