package domain

import (
	"strings"

	"github.com/covmark/covmark/internal/adapter"
	m "github.com/covmark/covmark/internal/model"
)

// NoiseFilter drops uncovered line numbers whose source content is not worth
// reporting: pure syntax, lone annotations, empty lines. It is a heuristic
// reduction of false-positive noise and never touches coverage counters, only
// which lines get listed.
type NoiseFilter struct {
	fs adapter.SourceFSAdapter
}

// NewNoiseFilter creates a filter reading source files through fs.
func NewNoiseFilter(fs adapter.SourceFSAdapter) *NoiseFilter {
	return &NoiseFilter{fs: fs}
}

// Filter returns the uncovered line numbers of record that carry meaningful
// source content. When the source file cannot be read, every line passes
// through unchanged so coverage information is never hidden by an I/O failure.
func (f *NoiseFilter) Filter(record m.CoverageRecord) []int {
	src, err := f.fs.ReadFile(record.Path)
	if err != nil {
		return record.UncoveredLines
	}

	lines := strings.Split(string(src), "\n")
	kept := make([]int, 0, len(record.UncoveredLines))

	for _, number := range record.UncoveredLines {
		if number < 1 || number > len(lines) {
			kept = append(kept, number)
			continue
		}

		if IsNoiseLine(lines[number-1]) {
			continue
		}

		kept = append(kept, number)
	}

	return kept
}

// punctuationRunes covers lines that close or open syntactic structure
// without executable content, like a lone brace or bracket.
const punctuationRunes = "{}()[];,"

// IsNoiseLine reports whether a single source line is semantically
// uninteresting as an uncovered line: whitespace only, punctuation only, or a
// lone annotation/decorator token such as @override.
func IsNoiseLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}

	if strings.Trim(trimmed, punctuationRunes) == "" {
		return true
	}

	if strings.HasPrefix(trimmed, "@") && !strings.ContainsAny(trimmed, " \t") {
		return true
	}

	return false
}
