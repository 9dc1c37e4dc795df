package report

import (
	"context"
	"time"
)

// Service is the read/query surface consumed by the grid and export layers.
type Service interface {
	Reconcile(ctx context.Context, employeeIDs []string, from, to time.Time) (PeriodResult, error)
	Summaries(ctx context.Context, result PeriodResult) ([]EmployeeSummary, error)
	ExportSource(ctx context.Context, employeeID string, year int, month time.Month) (ExportSource, error)
}
