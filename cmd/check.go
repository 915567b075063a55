package cmd

import (
	"github.com/spf13/cobra"

	"github.com/covmark/covmark/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "check <coverage-file>",
		Short: "Evaluate total coverage against a threshold",
		Long:  checkLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := flags.config(args[0])
			if err != nil {
				return err
			}

			result, err := workflow.Check(cfg)
			if err != nil {
				return err
			}

			if err := ui.DisplayTotal(result.Coverage); err != nil {
				return err
			}

			if !result.Passed {
				ui.DisplayThresholdFailure(result.Message())
				return domain.ErrBelowThreshold
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
