package domain

import (
	"errors"
	"fmt"

	m "github.com/covmark/covmark/internal/model"
)

// ErrBelowThreshold signals that total coverage fell below the configured
// minimum. It is an expected outcome, not a structural error: the report is
// still produced and the CLI layer decides how to exit.
var ErrBelowThreshold = errors.New("coverage below threshold")

// ThresholdResult is the outcome of evaluating total coverage against the
// configured minimum.
type ThresholdResult struct {
	// Coverage is the aggregate percentage across the filtered dataset.
	Coverage float64
	// FailUnder is the configured minimum; meaningless when Checked is false.
	FailUnder float64
	// Checked reports whether a minimum was configured at all.
	Checked bool
	// Passed is true when no minimum was configured or coverage reached it.
	Passed bool
}

// Message returns the diagnostic for a failed check.
func (t ThresholdResult) Message() string {
	return fmt.Sprintf("Total coverage %.1f%% is below the required %.1f%%", t.Coverage, t.FailUnder)
}

// AggregateCoverage computes sum(covered)/sum(total)*100 across the dataset,
// 0.0 when no lines were recorded.
func AggregateCoverage(dataset *m.CoverageDataset) float64 {
	var covered, total int

	for _, record := range dataset.Records() {
		covered += record.CoveredLines
		total += record.TotalLines
	}

	if total == 0 {
		return 0.0
	}

	return float64(covered) / float64(total) * 100
}

// EvaluateThreshold compares aggregate coverage against failUnder. Coverage
// exactly at the threshold passes. A nil failUnder disables the check.
func EvaluateThreshold(dataset *m.CoverageDataset, failUnder *float64) ThresholdResult {
	result := ThresholdResult{
		Coverage: AggregateCoverage(dataset),
		Passed:   true,
	}

	if failUnder == nil {
		return result
	}

	result.Checked = true
	result.FailUnder = *failUnder
	result.Passed = result.Coverage >= *failUnder

	return result
}
