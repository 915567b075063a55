package cmd

const rootLongDescription = `Covmark converts an LCOV coverage data file into a structured Markdown
report, as a post-test-run reporting step in development and CI pipelines.

The detailed report lists every file with uncovered lines, each with code
snippets of the uncovered line groups. Uncovered lines that carry no
executable content (lone braces, blank lines, annotations) are suppressed
unless --no-filter is given.

Exit status is 0 on success, 1 when the coverage file is missing or
malformed, or when total coverage falls below --fail-under.`

const summaryLongDescription = `Print one line per partially covered file plus the total coverage,
instead of the detailed Markdown report. Fully covered files are omitted
from the listing but still count toward the total.`

const checkLongDescription = `Compute total coverage across the (filtered) dataset and compare it
against --fail-under. Coverage exactly at the threshold passes; anything
below prints a diagnostic and exits with status 1. Without --fail-under the
command just prints the total.`

const listLongDescription = `Show covered/total line counts and the coverage percentage for every
file in the coverage data, as a table with an aggregate footer. Exclusion
and uncovered-only flags apply before listing.`

const viewLongDescription = `Open an interactive browser over the files that still have uncovered
lines: pick a file to see its uncovered line groups with source snippets.
Falls back to plain sequential output when stdout is not a terminal.`
