// Package cmd provides the root command and CLI setup for covmark.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/covmark/covmark/internal/adapter"
	"github.com/covmark/covmark/internal/controller"
	"github.com/covmark/covmark/internal/domain"
	m "github.com/covmark/covmark/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var workflow domain.Workflow
var ui controller.UI

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

// reportFlags holds the flag values shared by the reporting commands.
type reportFlags struct {
	output        string
	exclude       string
	uncoveredOnly bool
	failUnder     float64
	summary       bool
	noFilter      bool
}

// register binds the shared flags onto cmd.
func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVarP(&f.exclude, "exclude", "x", "", "exclude files matching a glob pattern (* and ? wildcards)")
	cmd.Flags().BoolVarP(&f.uncoveredOnly, "uncovered-only", "u", false, "drop fully covered files from the report and the total")
	cmd.Flags().Float64Var(&f.failUnder, "fail-under", -1, "fail when total coverage is below this percentage (0-100)")
	cmd.Flags().BoolVar(&f.noFilter, "no-filter", false, "report all uncovered lines, including pure-syntax noise")
}

// config resolves the flag values into an immutable ReportConfig.
func (f *reportFlags) config(input string) (m.ReportConfig, error) {
	cfg := m.ReportConfig{
		Input:         m.Path(input),
		Output:        m.Path(f.output),
		Exclude:       f.exclude,
		UncoveredOnly: f.uncoveredOnly,
		Summary:       f.summary,
		NoNoiseFilter: f.noFilter,
	}

	if f.failUnder >= 0 {
		if f.failUnder > 100 {
			return m.ReportConfig{}, fmt.Errorf("fail-under must be between 0 and 100, got %g", f.failUnder)
		}

		threshold := f.failUnder
		cfg.FailUnder = &threshold
	}

	return cfg, nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:           "covmark [flags] <coverage-file>",
		Short:         "Convert LCOV coverage data into a Markdown report",
		Long:          rootLongDescription,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := flags.config(args[0])
			if err != nil {
				return err
			}

			return runReport(cfg)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&flags.summary, "summary", "s", false, "print a condensed per-file summary instead of the detailed report")

	return cmd
}

// runReport executes the full pipeline and routes the report to the configured
// destination. The threshold decision is surfaced here, at the outermost
// layer; the domain only computes pass/fail.
func runReport(cfg m.ReportConfig) error {
	result, err := workflow.Report(cfg)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := fsAdapter.WriteFile(cfg.Output, []byte(result.Markdown), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	} else if err := ui.DisplayReport(result.Markdown); err != nil {
		return err
	}

	if !result.Threshold.Passed {
		ui.DisplayThresholdFailure(result.Threshold.Message())
		return domain.ErrBelowThreshold
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Structural errors are printed
// here; a failed threshold check already produced its diagnostic.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, domain.ErrBelowThreshold) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
