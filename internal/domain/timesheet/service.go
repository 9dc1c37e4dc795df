package timesheet

import (
	"context"
	"time"
)

// Service is the write/converge surface for attendance corrections.
type Service interface {
	// UpdateAttendance writes one correction through the backend and
	// re-fetches the affected month so local state converges on the
	// authoritative record. The returned days are the refreshed month.
	UpdateAttendance(ctx context.Context, req UpdateRequest) ([]Day, error)

	// MonthDays returns the backend's monthly day records as-is.
	MonthDays(ctx context.Context, employeeID string, year int, month time.Month) ([]Day, error)
}
