// Package controller provides output adapters for displaying coverage reports.
package controller

import (
	m "github.com/covmark/covmark/internal/model"
)

// FileView is one entry in the interactive report browser: a file with its
// coverage counters and the pre-rendered detail section for its uncovered
// lines.
type FileView struct {
	Path    string
	Covered int
	Total   int
	Detail  string
}

// UI defines the interface for presenting reports and diagnostics.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayReport prints a rendered Markdown report.
	DisplayReport(markdown string) error

	// DisplayCoverageList shows per-file coverage as a table.
	DisplayCoverageList(records []m.CoverageRecord) error

	// DisplayTotal prints the aggregate coverage percentage.
	DisplayTotal(coverage float64) error

	// DisplayThresholdFailure writes a threshold diagnostic to the error stream.
	DisplayThresholdFailure(message string)

	// View opens an interactive browser over the per-file reports.
	View(files []FileView) error
}
