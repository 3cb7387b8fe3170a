package cmd

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/studyforge/studyforge/internal/config"
	"github.com/studyforge/studyforge/internal/tui"
)

func timerCmd(opts *rootOptions) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the pomodoro timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" {
				return errors.New("--subject is required")
			}

			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			model, err := tui.NewTimerModel(cmd.Context(), a.PomodoroService.Timer(), subject, a.PomodoroService.TickInterval())
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "what you are studying")
	cmd.AddCommand(timerConfigCmd(opts))
	return cmd
}

func timerConfigCmd(opts *rootOptions) *cobra.Command {
	var focus, breakMinutes int
	var trackAutoFocus bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write interval lengths to the timer settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.config().TimerConfigPath
			settings, err := config.LoadTimerSettings(path)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("focus") {
				settings.Focus = time.Duration(focus) * time.Minute
			}
			if cmd.Flags().Changed("break") {
				settings.Break = time.Duration(breakMinutes) * time.Minute
			}
			if cmd.Flags().Changed("track-auto-focus") {
				settings.TrackAutoFocus = trackAutoFocus
			}
			if settings.Focus <= 0 || settings.Break <= 0 {
				return errors.New("focus and break must be at least one minute")
			}

			if err := config.SaveTimerSettings(path, settings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "focus %s, break %s, track auto focus %t (%s)\n",
				settings.Focus, settings.Break, settings.TrackAutoFocus, path)
			return nil
		},
	}

	cmd.Flags().IntVar(&focus, "focus", 0, "focus interval in minutes")
	cmd.Flags().IntVar(&breakMinutes, "break", 0, "break interval in minutes")
	cmd.Flags().BoolVar(&trackAutoFocus, "track-auto-focus", false, "record focus intervals that start after a break")
	return cmd
}
