package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
)

type TimesheetServiceImpl struct {
	gateway timesheet.Gateway
}

func NewTimesheetService(gateway timesheet.Gateway) timesheet.Service {
	return &TimesheetServiceImpl{gateway: gateway}
}

// UpdateAttendance implements timesheet.Service. The write goes through the
// backend and, on success, the affected month is re-fetched so the caller
// converges on the authoritative record. A failed write surfaces as a
// recoverable error and is never retried in the background.
func (s *TimesheetServiceImpl) UpdateAttendance(ctx context.Context, req timesheet.UpdateRequest) ([]timesheet.Day, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	if err := s.gateway.UpdateAttendance(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %v", timesheet.ErrUpdateRejected, err)
	}

	days, err := s.gateway.GetTimesheetMonth(ctx, req.EmployeeID, date.Year(), date.Month())
	if err != nil {
		// The write landed; only the convergence fetch failed. The caller
		// keeps its provisional state and re-validates on the next read.
		slog.Warn("attendance update succeeded but re-fetch failed",
			"employee_id", req.EmployeeID, "date", req.Date, "error", err)
		return nil, fmt.Errorf("%w: %v", timesheet.ErrMonthUnavailable, err)
	}

	return days, nil
}

// MonthDays implements timesheet.Service.
func (s *TimesheetServiceImpl) MonthDays(ctx context.Context, employeeID string, year int, month time.Month) ([]timesheet.Day, error) {
	days, err := s.gateway.GetTimesheetMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheet month: %w", err)
	}
	return days, nil
}
