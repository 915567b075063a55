// Package adapter contains infrastructure adapters for the covmark CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "github.com/covmark/covmark/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the reporting pipeline
// relies on: loading the coverage file, reading source files for snippet
// extraction, and writing the report. It intentionally hides direct `os`
// access so the pipeline logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so callers can check existence.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WorkingDir returns the current working directory, used to shorten
	// report paths.
	WorkingDir() (m.Path, error)
}

// LocalSourceFSAdapter is the concrete implementation backed by the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be wired
// into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WorkingDir returns the current working directory.
func (a *LocalSourceFSAdapter) WorkingDir() (m.Path, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return m.Path(dir), nil
}
