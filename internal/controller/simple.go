package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/covmark/covmark/internal/model"
)

// SimpleUI implements UI using the cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the rendered Markdown report as-is.
func (s *SimpleUI) DisplayReport(markdown string) error {
	s.printf("%s", markdown)
	return nil
}

// DisplayCoverageList shows per-file coverage as a table with an aggregate footer.
func (s *SimpleUI) DisplayCoverageList(records []m.CoverageRecord) error {
	if len(records) == 0 {
		s.printf("No coverage records found\n")
		return nil
	}

	var coveredSum, totalSum int

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Covered", "Total", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, record := range records {
		table.Append([]string{
			string(record.Path),
			fmt.Sprintf("%d", record.CoveredLines),
			fmt.Sprintf("%d", record.TotalLines),
			fmt.Sprintf("%.1f%%", record.Percent()),
		})

		coveredSum += record.CoveredLines
		totalSum += record.TotalLines
	}

	totalPercent := 0.0
	if totalSum > 0 {
		totalPercent = float64(coveredSum) / float64(totalSum) * 100
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(records)),
		fmt.Sprintf("%d", coveredSum),
		fmt.Sprintf("%d", totalSum),
		fmt.Sprintf("%.1f%%", totalPercent),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayTotal prints the aggregate coverage percentage.
func (s *SimpleUI) DisplayTotal(coverage float64) error {
	s.printf("Total Coverage: %.1f%%\n", coverage)
	return nil
}

// DisplayThresholdFailure writes the diagnostic to the error stream.
func (s *SimpleUI) DisplayThresholdFailure(message string) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s\n", message)
}

// View prints each file report sequentially. The simple UI has no
// interactivity, so this is the non-TTY fallback for the view command.
func (s *SimpleUI) View(files []FileView) error {
	if len(files) == 0 {
		s.printf("All files are fully covered\n")
		return nil
	}

	for _, file := range files {
		s.printf("%s\n", file.Detail)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
