package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/studyforge/studyforge/internal/app"
	"github.com/studyforge/studyforge/internal/config"
	"github.com/studyforge/studyforge/internal/logger"
)

type rootOptions struct {
	backend  string
	dataPath string
	verbose  bool
}

func RootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "studyforge",
		Short:        "Study planner with a pomodoro timer and progress tracking",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "storage backend: file, sql, s3 or memory (default from STORE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "data directory for the file backend (default from DATA_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(goalCmd(opts))
	rootCmd.AddCommand(progressCmd(opts))
	rootCmd.AddCommand(sessionsCmd(opts))
	rootCmd.AddCommand(statsCmd(opts))
	rootCmd.AddCommand(streakCmd(opts))
	rootCmd.AddCommand(reportCmd(opts))
	rootCmd.AddCommand(migrateCmd(opts))
	rootCmd.AddCommand(timerCmd(opts))

	return rootCmd
}

func (o *rootOptions) config() *config.Config {
	cfg := config.Load()
	if o.backend != "" {
		cfg.StoreBackend = o.backend
	}
	if o.dataPath != "" {
		cfg.DataPath = o.dataPath
	}
	return cfg
}

// openApp loads config, installs the CLI logger and wires the services.
// The returned func flushes logs and closes storage.
func (o *rootOptions) openApp(ctx context.Context) (*app.App, func(), error) {
	cfg := o.config()

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	flush := logger.Init(logger.Options{
		Development: true,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.AppEnv,
		Service:     "cli",
		Level:       level,
	})

	a, err := app.New(ctx, cfg)
	if err != nil {
		flush()
		return nil, nil, err
	}

	return a, func() {
		if err := a.Close(); err != nil {
			slog.Error("failed to close app", "error", err)
		}
		flush()
	}, nil
}
