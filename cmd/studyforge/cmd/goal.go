package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func goalCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage study goals",
	}

	cmd.AddCommand(goalAddCmd(opts))
	cmd.AddCommand(goalListCmd(opts))
	cmd.AddCommand(goalCompleteCmd(opts))
	return cmd
}

func goalAddCmd(opts *rootOptions) *cobra.Command {
	var target string
	var minutes int

	cmd := &cobra.Command{
		Use:   "add SUBJECT",
		Short: "Add a study goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			goal, err := a.ProgressService.AddGoal(cmd.Context(), args[0], target, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added goal %s (%s)\n", goal.ID, goal.Subject)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "what to accomplish")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "time available in minutes")
	return cmd
}

func goalListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List study goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			goals := a.ProgressService.Goals()
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no goals yet")
				return nil
			}

			t := table.New().Headers("ID", "SUBJECT", "TARGET", "MINUTES", "DONE")
			for _, goal := range goals {
				t.Row(goal.ID, goal.Subject, goal.Target, strconv.Itoa(goal.TimeAvailable), checkmark(goal.Completed))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func goalCompleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a goal as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			return a.ProgressService.CompleteGoal(cmd.Context(), args[0])
		},
	}
}

func checkmark(b bool) string {
	if b {
		return "x"
	}
	return ""
}
