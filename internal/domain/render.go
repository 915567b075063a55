package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/covmark/covmark/internal/adapter"
	m "github.com/covmark/covmark/internal/model"
)

// placeholder used when the source file is unavailable or shorter than the
// requested line.
const missingLineMarker = "<line unavailable>"

// maxConcurrentReads bounds the parallel source reads during snippet
// extraction. The reads are independent; output order stays the dataset order.
const maxConcurrentReads = 8

// languageByExt maps file extensions to Markdown code-fence language tags.
var languageByExt = map[string]string{
	".c":     "c",
	".cpp":   "cpp",
	".cs":    "csharp",
	".css":   "css",
	".dart":  "dart",
	".go":    "go",
	".h":     "c",
	".html":  "html",
	".java":  "java",
	".js":    "javascript",
	".json":  "json",
	".kt":    "kotlin",
	".php":   "php",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".sh":    "bash",
	".swift": "swift",
	".ts":    "typescript",
	".yaml":  "yaml",
	".yml":   "yaml",
}

// FormatPercent renders covered/total as a percentage with one decimal place,
// or "N/A" when nothing was recorded.
func FormatPercent(covered, total int) string {
	if total == 0 {
		return "N/A"
	}

	return fmt.Sprintf("%.1f%%", float64(covered)/float64(total)*100)
}

// languageTag derives the code-fence language from a file extension. Unknown
// extensions fall back to a plain-text tag.
func languageTag(path m.Path) string {
	ext := strings.ToLower(filepath.Ext(string(path)))
	if lang, ok := languageByExt[ext]; ok {
		return lang
	}

	return "text"
}

// Renderer produces the Markdown output shapes: a detailed per-file report
// with code snippets, or a condensed summary.
type Renderer struct {
	fs         adapter.SourceFSAdapter
	workingDir string
}

// NewRenderer creates a renderer reading source snippets through fs. Paths in
// the report are shortened relative to the current working directory.
func NewRenderer(fs adapter.SourceFSAdapter) *Renderer {
	renderer := &Renderer{fs: fs}

	if dir, err := fs.WorkingDir(); err == nil {
		renderer.workingDir = string(dir)
	}

	return renderer
}

// Detailed renders the full Markdown document: title, total coverage, and one
// section per file that still has uncovered lines after filtering. When no
// uncovered lines remain anywhere, a single celebratory notice replaces the
// per-file sections.
func (r *Renderer) Detailed(dataset *m.CoverageDataset, reports []FileReport) string {
	var b strings.Builder

	b.WriteString("# Coverage Report\n\n")
	fmt.Fprintf(&b, "Total Coverage: %s\n", r.totalPercent(dataset))

	if len(reports) == 0 {
		b.WriteString("\n🎉 All files are fully covered!\n")
		return b.String()
	}

	sources := r.prefetchSources(reports)

	for i, report := range reports {
		b.WriteString("\n")
		fmt.Fprintf(&b, "## %s\n\n", r.displayPath(report.Record.Path))
		fmt.Fprintf(&b, "### Coverage: %s (%d/%d)\n",
			FormatPercent(report.Record.CoveredLines, report.Record.TotalLines),
			report.Record.CoveredLines, report.Record.TotalLines)

		lang := languageTag(report.Record.Path)

		for _, group := range report.Groups {
			b.WriteString("\n```")
			b.WriteString(lang)
			b.WriteString("\n")

			for _, number := range group {
				fmt.Fprintf(&b, "%4d: %s\n", number, sourceLine(sources[i], number))
			}

			b.WriteString("```\n")
		}
	}

	return b.String()
}

// Summary renders one line per partially covered file plus the total. Fully
// covered files are omitted from the listing but still count toward the total.
func (r *Renderer) Summary(dataset *m.CoverageDataset) string {
	var b strings.Builder

	for _, record := range dataset.Records() {
		if record.CoveredLines >= record.TotalLines {
			continue
		}

		fmt.Fprintf(&b, "File '%s' coverage: %s\n",
			r.displayPath(record.Path),
			FormatPercent(record.CoveredLines, record.TotalLines))
	}

	fmt.Fprintf(&b, "Total Coverage: %s\n", r.totalPercent(dataset))

	return b.String()
}

// RenderFileSection renders the detailed section for a single file, used by
// the interactive viewer.
func (r *Renderer) RenderFileSection(report FileReport) string {
	single := m.NewCoverageDataset()
	single.Append(report.Record)

	document := r.Detailed(single, []FileReport{report})

	// Drop the document title and total line, keeping the file section.
	if idx := strings.Index(document, "## "); idx >= 0 {
		return document[idx:]
	}

	return document
}

func (r *Renderer) totalPercent(dataset *m.CoverageDataset) string {
	var covered, total int

	for _, record := range dataset.Records() {
		covered += record.CoveredLines
		total += record.TotalLines
	}

	return FormatPercent(covered, total)
}

// displayPath strips the working directory prefix and normalizes separators
// to forward slashes.
func (r *Renderer) displayPath(path m.Path) string {
	display := filepath.ToSlash(string(path))

	if r.workingDir != "" {
		prefix := filepath.ToSlash(r.workingDir) + "/"
		display = strings.TrimPrefix(display, prefix)
	}

	return display
}

// prefetchSources reads the source files for all reports with bounded
// parallelism. A file that cannot be read yields nil lines; the placeholder
// marker covers it during rendering.
func (r *Renderer) prefetchSources(reports []FileReport) [][]string {
	sources := make([][]string, len(reports))

	var group errgroup.Group
	group.SetLimit(maxConcurrentReads)

	for i, report := range reports {
		group.Go(func() error {
			content, err := r.fs.ReadFile(report.Record.Path)
			if err != nil {
				return nil
			}

			sources[i] = strings.Split(string(content), "\n")

			return nil
		})
	}

	_ = group.Wait()

	return sources
}

// sourceLine returns the 1-based line from lines, or the placeholder when the
// file is unavailable or too short.
func sourceLine(lines []string, number int) string {
	if number < 1 || number > len(lines) {
		return missingLineMarker
	}

	return strings.TrimSuffix(lines[number-1], "\r")
}
