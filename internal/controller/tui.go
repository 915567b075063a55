package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/covmark/covmark/internal/model"
)

// TUI implements UI using Bubble Tea for the interactive report browser.
// Non-interactive output (report text, diagnostics) is printed directly.
type TUI struct {
	out    io.Writer
	errOut io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(out, errOut io.Writer) *TUI {
	return &TUI{out: out, errOut: errOut}
}

// DisplayReport prints the rendered Markdown report as-is.
func (t *TUI) DisplayReport(markdown string) error {
	_, err := fmt.Fprint(t.out, markdown)
	return err
}

// DisplayCoverageList prints one line per record with its coverage percentage.
func (t *TUI) DisplayCoverageList(records []m.CoverageRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(t.out, "No coverage records found")
		return err
	}

	for _, record := range records {
		_, _ = fmt.Fprintf(t.out, "%6.1f%%  %s\n", record.Percent(), record.Path)
	}

	return nil
}

// DisplayTotal prints the aggregate coverage percentage.
func (t *TUI) DisplayTotal(coverage float64) error {
	_, err := fmt.Fprintf(t.out, "Total Coverage: %.1f%%\n", coverage)
	return err
}

// DisplayThresholdFailure writes the diagnostic to the error stream.
func (t *TUI) DisplayThresholdFailure(message string) {
	_, _ = fmt.Fprintf(t.errOut, "%s\n", message)
}

// View opens the interactive browser over the per-file reports.
func (t *TUI) View(files []FileView) error {
	if len(files) == 0 {
		_, err := fmt.Fprintln(t.out, "🎉 All files are fully covered!")
		return err
	}

	program := tea.NewProgram(newViewModel(files), tea.WithOutput(t.out), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
