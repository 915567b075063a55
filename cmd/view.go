package cmd

import (
	"github.com/spf13/cobra"

	"github.com/covmark/covmark/internal/controller"
	"github.com/covmark/covmark/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "view <coverage-file>",
		Short: "Browse uncovered lines interactively",
		Long:  viewLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := flags.config(args[0])
			if err != nil {
				return err
			}

			reports, err := workflow.FileReports(cfg)
			if err != nil {
				return err
			}

			renderer := domain.NewRenderer(fsAdapter)

			files := make([]controller.FileView, 0, len(reports))
			for _, report := range reports {
				files = append(files, controller.FileView{
					Path:    string(report.Record.Path),
					Covered: report.Record.CoveredLines,
					Total:   report.Record.TotalLines,
					Detail:  renderer.RenderFileSection(report),
				})
			}

			return ui.View(files)
		},
	}

	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
