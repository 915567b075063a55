// Package model defines the data structures for coverage reporting.
package model

// Path represents a file system path.
type Path string

// CoverageRecord holds the line coverage observed for a single source file.
// Every recorded line is either covered or listed in UncoveredLines, so
// CoveredLines + len(UncoveredLines) == TotalLines.
type CoverageRecord struct {
	Path         Path
	TotalLines   int
	CoveredLines int
	// UncoveredLines contains 1-based line numbers with zero hits,
	// strictly increasing, no duplicates.
	UncoveredLines []int
}

// FullyCovered reports whether every recorded line was executed.
func (r CoverageRecord) FullyCovered() bool {
	return r.CoveredLines == r.TotalLines
}

// Percent returns the covered share of recorded lines, 0 when nothing was recorded.
func (r CoverageRecord) Percent() float64 {
	if r.TotalLines == 0 {
		return 0
	}

	return float64(r.CoveredLines) / float64(r.TotalLines) * 100
}

// LineGroup is a maximal run of consecutive uncovered line numbers.
type LineGroup []int

// CoverageDataset maps file paths to coverage records while preserving the
// order in which paths first appeared in the coverage file. Output is rendered
// in that order, which keeps reports deterministic.
type CoverageDataset struct {
	records map[Path]*CoverageRecord
	order   []Path
}

// NewCoverageDataset creates an empty dataset.
func NewCoverageDataset() *CoverageDataset {
	return &CoverageDataset{records: make(map[Path]*CoverageRecord)}
}

// Start returns a fresh record for path. A repeated path keeps its original
// position but has its counters reset, so the last block for a path wins.
func (d *CoverageDataset) Start(path Path) *CoverageRecord {
	if existing, ok := d.records[path]; ok {
		*existing = CoverageRecord{Path: path}
		return existing
	}

	record := &CoverageRecord{Path: path}
	d.records[path] = record
	d.order = append(d.order, path)

	return record
}

// Append copies a record into the dataset, replacing any record with the same path.
func (d *CoverageDataset) Append(record CoverageRecord) {
	target := d.Start(record.Path)
	*target = record
}

// Record returns the record for path, if present.
func (d *CoverageDataset) Record(path Path) (CoverageRecord, bool) {
	record, ok := d.records[path]
	if !ok {
		return CoverageRecord{}, false
	}

	return *record, true
}

// Records returns copies of all records in insertion order.
func (d *CoverageDataset) Records() []CoverageRecord {
	records := make([]CoverageRecord, 0, len(d.order))
	for _, path := range d.order {
		records = append(records, *d.records[path])
	}

	return records
}

// Len returns the number of records.
func (d *CoverageDataset) Len() int {
	return len(d.order)
}
