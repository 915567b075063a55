package model

// ReportConfig captures the resolved settings for a single reporting run.
// It is populated by the CLI layer and treated as immutable by the pipeline.
type ReportConfig struct {
	// Input is the coverage file to parse.
	Input Path
	// Output receives the rendered report; empty means stdout.
	Output Path
	// Exclude drops records whose path matches this glob-style pattern
	// (* and ? wildcards). Empty means no exclusion.
	Exclude string
	// UncoveredOnly removes fully covered records from the dataset,
	// including total-coverage accounting.
	UncoveredOnly bool
	// FailUnder is the minimum acceptable total coverage percentage
	// (0-100). Nil disables the threshold check.
	FailUnder *float64
	// Summary selects the condensed one-line-per-file output.
	Summary bool
	// NoNoiseFilter disables the source-noise suppression of uncovered lines.
	NoNoiseFilter bool
}
