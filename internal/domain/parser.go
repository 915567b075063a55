// Package domain implements the coverage reporting pipeline: parsing LCOV
// data, filtering records, grouping uncovered lines, rendering Markdown, and
// evaluating the coverage threshold.
package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	m "github.com/covmark/covmark/internal/model"
)

// ErrMalformedRecord signals a DA: line with non-numeric fields. The coverage
// format is machine-generated, so this indicates corrupted or foreign input
// and aborts the run.
var ErrMalformedRecord = errors.New("malformed coverage data line")

const (
	sourceFilePrefix = "SF:"
	dataLinePrefix   = "DA:"
)

// ParseCoverage turns the raw text of an LCOV coverage file into a dataset.
// SF: lines open a record, DA:<line>,<hits> lines attribute one source line to
// the open record, and every other line type (end_of_record included) is
// ignored. A DA: line before any SF: line has no record to attach to and is
// skipped. Empty input yields an empty dataset.
func ParseCoverage(content string) (*m.CoverageDataset, error) {
	dataset := m.NewCoverageDataset()

	var current *m.CoverageRecord

	for lineNo, raw := range strings.Split(content, "\n") {
		line := strings.TrimSuffix(raw, "\r")

		switch {
		case strings.HasPrefix(line, sourceFilePrefix):
			path := m.Path(strings.TrimPrefix(line, sourceFilePrefix))
			current = dataset.Start(path)

		case strings.HasPrefix(line, dataLinePrefix):
			if current == nil {
				continue
			}

			lineNumber, hitCount, err := parseDataLine(strings.TrimPrefix(line, dataLinePrefix))
			if err != nil {
				return nil, fmt.Errorf("%w: %q at line %d", ErrMalformedRecord, line, lineNo+1)
			}

			current.TotalLines++
			if hitCount > 0 {
				current.CoveredLines++
			} else {
				current.UncoveredLines = append(current.UncoveredLines, lineNumber)
			}
		}
	}

	return dataset, nil
}

// parseDataLine splits the payload of a DA: entry into line number and hit count.
func parseDataLine(payload string) (int, int, error) {
	fields := strings.SplitN(payload, ",", 2)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected <line>,<hits>, got %q", payload)
	}

	lineNumber, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}

	hitCount, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return lineNumber, hitCount, nil
}
