package cmd

import (
	"github.com/stretchr/testify/mock"

	"github.com/covmark/covmark/internal/domain"
	m "github.com/covmark/covmark/internal/model"
)

// mockWorkflow is a testify mock of domain.Workflow for exercising command
// wiring without touching the disk.
type mockWorkflow struct {
	mock.Mock
}

func (mw *mockWorkflow) Load(cfg m.ReportConfig) (*m.CoverageDataset, error) {
	args := mw.Called(cfg)

	var dataset *m.CoverageDataset
	if v := args.Get(0); v != nil {
		dataset = v.(*m.CoverageDataset)
	}

	return dataset, args.Error(1)
}

func (mw *mockWorkflow) Report(cfg m.ReportConfig) (domain.Result, error) {
	args := mw.Called(cfg)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (mw *mockWorkflow) FileReports(cfg m.ReportConfig) ([]domain.FileReport, error) {
	args := mw.Called(cfg)

	var reports []domain.FileReport
	if v := args.Get(0); v != nil {
		reports = v.([]domain.FileReport)
	}

	return reports, args.Error(1)
}

func (mw *mockWorkflow) Check(cfg m.ReportConfig) (domain.ThresholdResult, error) {
	args := mw.Called(cfg)
	return args.Get(0).(domain.ThresholdResult), args.Error(1)
}
