package domain

import (
	"regexp"
	"strings"

	m "github.com/covmark/covmark/internal/model"
)

// PathMatcher matches file paths against a glob-style exclusion pattern.
// When the translated pattern does not compile, it degrades to a literal
// substring match instead of failing the run.
type PathMatcher struct {
	re      *regexp.Regexp
	literal string
}

// NewPathMatcher translates a glob pattern (* matches any run of characters,
// ? a single character) into an anchored regular expression over the full
// path. The translation is intentionally naive: characters other than the two
// wildcards and the dot are passed through, so a pattern that happens to
// contain regexp syntax may fail to compile and triggers the substring
// fallback.
func NewPathMatcher(pattern string) *PathMatcher {
	translated := strings.NewReplacer(
		".", `\.`,
		"*", ".*",
		"?", ".",
	).Replace(pattern)

	re, err := regexp.Compile("^" + translated + "$")
	if err != nil {
		return &PathMatcher{literal: pattern}
	}

	return &PathMatcher{re: re}
}

// Match reports whether path is excluded by the pattern.
func (pm *PathMatcher) Match(path string) bool {
	if pm.re != nil {
		return pm.re.MatchString(path)
	}

	return strings.Contains(path, pm.literal)
}

// ApplyPolicy reduces a dataset before grouping and rendering. Records whose
// path matches the exclusion pattern are dropped first; when UncoveredOnly is
// set, fully covered records are then dropped as well, which removes them from
// total-coverage accounting too.
func ApplyPolicy(dataset *m.CoverageDataset, cfg m.ReportConfig) *m.CoverageDataset {
	var matcher *PathMatcher
	if cfg.Exclude != "" {
		matcher = NewPathMatcher(cfg.Exclude)
	}

	filtered := m.NewCoverageDataset()

	for _, record := range dataset.Records() {
		if matcher != nil && matcher.Match(string(record.Path)) {
			continue
		}

		if cfg.UncoveredOnly && record.FullyCovered() {
			continue
		}

		filtered.Append(record)
	}

	return filtered
}
