package domain

import (
	"fmt"

	"github.com/covmark/covmark/internal/adapter"
	m "github.com/covmark/covmark/internal/model"
)

// FileReport pairs a coverage record with the uncovered lines that survived
// the noise filter, grouped into consecutive runs for rendering.
type FileReport struct {
	Record    m.CoverageRecord
	Uncovered []int
	Groups    []m.LineGroup
}

// Result is the outcome of a full reporting run.
type Result struct {
	Markdown  string
	Threshold ThresholdResult
}

// Workflow defines the coverage reporting operations exposed to the CLI.
type Workflow interface {
	// Load reads and parses the coverage file, then applies the policy
	// filter (exclusion pattern, uncovered-only).
	Load(cfg m.ReportConfig) (*m.CoverageDataset, error)

	// Report runs the whole pipeline and returns the rendered Markdown
	// together with the threshold evaluation.
	Report(cfg m.ReportConfig) (Result, error)

	// FileReports returns the per-file uncovered line groups after all
	// filtering, in dataset order.
	FileReports(cfg m.ReportConfig) ([]FileReport, error)

	// Check evaluates the coverage threshold without rendering a report.
	Check(cfg m.ReportConfig) (ThresholdResult, error)
}

type workflow struct {
	fs adapter.SourceFSAdapter
}

// NewWorkflow creates a Workflow backed by the provided filesystem adapter.
func NewWorkflow(fs adapter.SourceFSAdapter) Workflow {
	return &workflow{fs: fs}
}

func (w *workflow) Load(cfg m.ReportConfig) (*m.CoverageDataset, error) {
	content, err := w.fs.ReadFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("read coverage file %s: %w", cfg.Input, err)
	}

	dataset, err := ParseCoverage(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse coverage file %s: %w", cfg.Input, err)
	}

	return ApplyPolicy(dataset, cfg), nil
}

func (w *workflow) Report(cfg m.ReportConfig) (Result, error) {
	dataset, err := w.Load(cfg)
	if err != nil {
		return Result{}, err
	}

	renderer := NewRenderer(w.fs)

	var markdown string
	if cfg.Summary {
		markdown = renderer.Summary(dataset)
	} else {
		markdown = renderer.Detailed(dataset, w.buildFileReports(dataset, cfg))
	}

	return Result{
		Markdown:  markdown,
		Threshold: EvaluateThreshold(dataset, cfg.FailUnder),
	}, nil
}

func (w *workflow) FileReports(cfg m.ReportConfig) ([]FileReport, error) {
	dataset, err := w.Load(cfg)
	if err != nil {
		return nil, err
	}

	return w.buildFileReports(dataset, cfg), nil
}

func (w *workflow) Check(cfg m.ReportConfig) (ThresholdResult, error) {
	dataset, err := w.Load(cfg)
	if err != nil {
		return ThresholdResult{}, err
	}

	return EvaluateThreshold(dataset, cfg.FailUnder), nil
}

// buildFileReports selects the records that still have reportable uncovered
// lines. The noise filter trims what gets listed but never changes coverage
// counters; a record whose uncovered lines are all noise simply drops out of
// the listing.
func (w *workflow) buildFileReports(dataset *m.CoverageDataset, cfg m.ReportConfig) []FileReport {
	noise := NewNoiseFilter(w.fs)

	var reports []FileReport

	for _, record := range dataset.Records() {
		if len(record.UncoveredLines) == 0 {
			continue
		}

		uncovered := record.UncoveredLines
		if !cfg.NoNoiseFilter {
			uncovered = noise.Filter(record)
		}

		if len(uncovered) == 0 {
			continue
		}

		reports = append(reports, FileReport{
			Record:    record,
			Uncovered: uncovered,
			Groups:    GroupLines(uncovered),
		})
	}

	return reports
}
