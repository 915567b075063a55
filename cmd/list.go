package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "list <coverage-file>",
		Short: "List per-file coverage as a table",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := flags.config(args[0])
			if err != nil {
				return err
			}

			dataset, err := workflow.Load(cfg)
			if err != nil {
				return err
			}

			return ui.DisplayCoverageList(dataset.Records())
		},
	}

	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
