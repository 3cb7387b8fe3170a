package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func progressCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Log and list manual progress records",
	}

	cmd.AddCommand(progressAddCmd(opts))
	cmd.AddCommand(progressListCmd(opts))
	return cmd
}

func progressAddCmd(opts *rootOptions) *cobra.Command {
	var minutes int
	var completed bool
	var nextSteps string

	cmd := &cobra.Command{
		Use:   "add GOAL",
		Short: "Record progress for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			record, err := a.ProgressService.AddProgressRecord(cmd.Context(), args[0], minutes, completed, nextSteps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %d min on %s for %s\n", record.TimeSpent, record.Date, record.Goal)
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "minutes spent")
	cmd.Flags().BoolVar(&completed, "done", false, "the goal was reached")
	cmd.Flags().StringVarP(&nextSteps, "next", "n", "", "next steps")
	return cmd
}

func progressListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List progress records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			records := a.ProgressService.Records()
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no progress recorded yet")
				return nil
			}

			t := table.New().Headers("DATE", "GOAL", "MINUTES", "DONE", "NEXT")
			for _, record := range records {
				t.Row(record.Date, record.Goal, strconv.Itoa(record.TimeSpent), checkmark(record.Completed), record.NextSteps)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func sessionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List completed pomodoro sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			sessions := a.ProgressService.Sessions()
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no sessions yet")
				return nil
			}

			t := table.New().Headers("STARTED", "SUBJECT", "MINUTES")
			for _, session := range sessions {
				t.Row(session.StartTime.Local().Format("2006-01-02 15:04"), session.Subject, strconv.Itoa(session.Duration))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func statsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals and per-subject time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			stats := a.ProgressService.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total study time: %d min (%.1f h)\n", stats.TotalMinutes, stats.TotalHours)
			fmt.Fprintf(out, "goals completed:  %d of %d\n", stats.CompletedCount, stats.RecordCount)
			fmt.Fprintf(out, "pomodoros:        %d (%d min)\n", stats.SessionCount, stats.SessionMinutes)
			fmt.Fprintf(out, "current streak:   %d\n", stats.Streak)

			totals := a.ProgressService.SubjectTotals()
			if len(totals) > 0 {
				t := table.New().Headers("SUBJECT", "SESSIONS", "MINUTES")
				for _, total := range totals {
					t.Row(total.Subject, strconv.Itoa(total.Sessions), strconv.Itoa(total.Minutes))
				}
				fmt.Fprintln(out, t.Render())
			}
			return nil
		},
	}
}

func streakCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Update the streak from today's latest record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			streak, err := a.ProgressService.ComputeStreak(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "current streak: %d\n", streak)
			return nil
		},
	}
}
