package cmd

import (
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command.
var summaryCmd = newSummaryCmd()

func newSummaryCmd() *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "summary <coverage-file>",
		Short: "Print a condensed per-file coverage summary",
		Long:  summaryLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := flags.config(args[0])
			if err != nil {
				return err
			}

			cfg.Summary = true

			return runReport(cfg)
		},
	}

	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
