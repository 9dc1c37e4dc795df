package timesheet

import (
	"context"
	"time"
)

// Gateway is the attendance backend's timesheet surface.
type Gateway interface {
	GetTimesheetMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Day, error)
	RangePunches(ctx context.Context, from, to time.Time, filter RangeFilter) (RangeResult, error)
	UpdateAttendance(ctx context.Context, req UpdateRequest) error
}
