package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"

	"github.com/covmark/covmark/internal/controller"
	"github.com/covmark/covmark/internal/domain"
	m "github.com/covmark/covmark/internal/model"
)

// withMocks swaps the package-level workflow and binds the UI to cmd for the
// duration of a test.
func withMocks(t *testing.T, cmd *cobra.Command) *mockWorkflow {
	t.Helper()

	mockWf := &mockWorkflow{}

	originalWorkflow := workflow
	originalUI := ui
	workflow = mockWf
	ui = controller.NewSimpleUI(cmd)

	t.Cleanup(func() {
		workflow = originalWorkflow
		ui = originalUI
	})

	return mockWf
}

func TestRootCmd_PrintsReport(t *testing.T) {
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	mockWf := withMocks(t, cmd)

	mockWf.On("Report", mock.MatchedBy(func(cfg m.ReportConfig) bool {
		return cfg.Input == m.Path("coverage.lcov") &&
			cfg.Exclude == "**/test/**" &&
			cfg.UncoveredOnly &&
			!cfg.Summary
	})).Return(domain.Result{
		Markdown:  "# Coverage Report\n",
		Threshold: domain.ThresholdResult{Coverage: 92.5, Passed: true},
	}, nil)

	cmd.SetArgs([]string{"--exclude", "**/test/**", "-u", "coverage.lcov"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out.String(), "# Coverage Report") {
		t.Fatalf("report missing from output: %q", out.String())
	}

	mockWf.AssertExpectations(t)
}

func TestRootCmd_SummaryFlag(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)

	mockWf := withMocks(t, cmd)

	mockWf.On("Report", mock.MatchedBy(func(cfg m.ReportConfig) bool {
		return cfg.Summary
	})).Return(domain.Result{
		Markdown:  "Total Coverage: 100.0%\n",
		Threshold: domain.ThresholdResult{Coverage: 100, Passed: true},
	}, nil)

	cmd.SetArgs([]string{"--summary", "coverage.lcov"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	mockWf.AssertExpectations(t)
}

func TestRootCmd_BelowThreshold(t *testing.T) {
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	mockWf := withMocks(t, cmd)

	failed := domain.ThresholdResult{Coverage: 70, FailUnder: 80, Checked: true, Passed: false}

	mockWf.On("Report", mock.MatchedBy(func(cfg m.ReportConfig) bool {
		return cfg.FailUnder != nil && *cfg.FailUnder == 80.0
	})).Return(domain.Result{Markdown: "report\n", Threshold: failed}, nil)

	cmd.SetArgs([]string{"--fail-under", "80", "coverage.lcov"})

	err := cmd.Execute()
	if !errors.Is(err, domain.ErrBelowThreshold) {
		t.Fatalf("expected ErrBelowThreshold, got %v", err)
	}

	// The report is still printed before the diagnostic.
	if !strings.Contains(out.String(), "report") {
		t.Fatalf("report missing from output: %q", out.String())
	}

	if !strings.Contains(errOut.String(), "below the required 80.0%") {
		t.Fatalf("diagnostic missing from error stream: %q", errOut.String())
	}
}

func TestRootCmd_WritesReportToFile(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)

	mockWf := withMocks(t, cmd)

	mockWf.On("Report", mock.Anything).Return(domain.Result{
		Markdown:  "# Written Report\n",
		Threshold: domain.ThresholdResult{Passed: true},
	}, nil)

	target := filepath.Join(t.TempDir(), "report.md")

	cmd.SetArgs([]string{"--output", target, "coverage.lcov"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	content, err := fsAdapter.ReadFile(m.Path(target))
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}

	if string(content) != "# Written Report\n" {
		t.Fatalf("unexpected file content: %q", content)
	}

	if strings.Contains(out.String(), "# Written Report") {
		t.Fatalf("report should not also go to stdout: %q", out.String())
	}
}

func TestRootCmd_FailUnderValidation(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	withMocks(t, cmd)

	cmd.SetArgs([]string{"--fail-under", "150", "coverage.lcov"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "between 0 and 100") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRootCmd_ReportError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWf := withMocks(t, cmd)

	boom := errors.New("read coverage file: no such file")
	mockWf.On("Report", mock.Anything).Return(domain.Result{}, boom)

	cmd.SetArgs([]string{"missing.lcov"})

	if err := cmd.Execute(); !errors.Is(err, boom) {
		t.Fatalf("expected propagated error, got %v", err)
	}
}
