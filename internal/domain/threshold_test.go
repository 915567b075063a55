package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/covmark/covmark/internal/model"
)

func datasetWith(records ...m.CoverageRecord) *m.CoverageDataset {
	dataset := m.NewCoverageDataset()
	for _, record := range records {
		dataset.Append(record)
	}

	return dataset
}

func TestAggregateCoverage(t *testing.T) {
	t.Run("empty dataset is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, AggregateCoverage(m.NewCoverageDataset()))
	})

	t.Run("sums across records", func(t *testing.T) {
		dataset := datasetWith(
			m.CoverageRecord{Path: "a", TotalLines: 10, CoveredLines: 7},
			m.CoverageRecord{Path: "b", TotalLines: 5, CoveredLines: 5},
		)

		assert.InDelta(t, 80.0, AggregateCoverage(dataset), 0.001)
	})

	t.Run("records with zero lines contribute nothing", func(t *testing.T) {
		dataset := datasetWith(
			m.CoverageRecord{Path: "a", TotalLines: 4, CoveredLines: 2},
			m.CoverageRecord{Path: "b"},
		)

		assert.InDelta(t, 50.0, AggregateCoverage(dataset), 0.001)
	})
}

func TestEvaluateThreshold(t *testing.T) {
	dataset := datasetWith(m.CoverageRecord{Path: "a", TotalLines: 10, CoveredLines: 8})

	t.Run("no threshold configured always passes", func(t *testing.T) {
		result := EvaluateThreshold(dataset, nil)

		assert.True(t, result.Passed)
		assert.False(t, result.Checked)
		assert.InDelta(t, 80.0, result.Coverage, 0.001)
	})

	t.Run("coverage exactly at the threshold passes", func(t *testing.T) {
		failUnder := 80.0
		result := EvaluateThreshold(dataset, &failUnder)

		assert.True(t, result.Passed)
		assert.True(t, result.Checked)
	})

	t.Run("one tenth of a percent below fails", func(t *testing.T) {
		// 799/1000 = 79.9%, threshold 80.0%.
		below := datasetWith(m.CoverageRecord{Path: "a", TotalLines: 1000, CoveredLines: 799})

		failUnder := 80.0
		result := EvaluateThreshold(below, &failUnder)

		assert.False(t, result.Passed)
		assert.Contains(t, result.Message(), "79.9%")
		assert.Contains(t, result.Message(), "80.0%")
	})

	t.Run("empty dataset against a positive threshold fails", func(t *testing.T) {
		failUnder := 50.0
		result := EvaluateThreshold(m.NewCoverageDataset(), &failUnder)

		assert.False(t, result.Passed)
		assert.Equal(t, 0.0, result.Coverage)
	})
}
