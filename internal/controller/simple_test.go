package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/covmark/covmark/internal/model"
)

func TestSimpleUI_DisplayReport(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplayReport("# Coverage Report\n"); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	if buf.String() != "# Coverage Report\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestSimpleUI_DisplayCoverageList_PrintsTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	records := []m.CoverageRecord{
		{Path: "lib/a.dart", TotalLines: 10, CoveredLines: 7, UncoveredLines: []int{3, 4, 8}},
		{Path: "lib/b.dart", TotalLines: 5, CoveredLines: 5},
	}

	if err := ui.DisplayCoverageList(records); err != nil {
		t.Fatalf("DisplayCoverageList() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"lib/a.dart",
		"lib/b.dart",
		"70.0%",
		"100.0%",
		"TOTAL FILES 2",
		"80.0%",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayCoverageList_Empty(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplayCoverageList(nil); err != nil {
		t.Fatalf("DisplayCoverageList() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No coverage records found") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestSimpleUI_DisplayThresholdFailure_WritesToErrStream(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	ui := NewSimpleUI(cmd)
	ui.DisplayThresholdFailure("Total coverage 70.0% is below the required 80.0%")

	if out.Len() != 0 {
		t.Fatalf("diagnostic leaked to stdout: %q", out.String())
	}

	if !strings.Contains(errOut.String(), "below the required 80.0%") {
		t.Fatalf("unexpected error output: %q", errOut.String())
	}
}

func TestSimpleUI_DisplayTotal(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplayTotal(83.25); err != nil {
		t.Fatalf("DisplayTotal() error = %v", err)
	}

	if buf.String() != "Total Coverage: 83.2%\n" && buf.String() != "Total Coverage: 83.3%\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestSimpleUI_View_PrintsDetailsSequentially(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	files := []FileView{
		{Path: "a.go", Covered: 1, Total: 2, Detail: "## a.go\ndetail-a"},
		{Path: "b.go", Covered: 2, Total: 4, Detail: "## b.go\ndetail-b"},
	}

	if err := ui.View(files); err != nil {
		t.Fatalf("View() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "detail-a") || !strings.Contains(output, "detail-b") {
		t.Fatalf("missing details in output:\n%s", output)
	}
}
