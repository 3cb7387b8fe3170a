package cmd

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyforge/studyforge/internal/ui"
)

func reportCmd(opts *rootOptions) *cobra.Command {
	var asHTML bool
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the weekly review as markdown or HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			body := a.ReportService.Markdown(a.Cfg.AppName)
			if asHTML {
				report, err := a.ReportService.Render(a.Cfg.AppName)
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := ui.ReportPage(report.Title, report.Body).Render(cmd.Context(), &buf); err != nil {
					return err
				}
				body = buf.Bytes()
			}

			if output != "" {
				return os.WriteFile(output, body, 0644)
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "render HTML instead of markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
