package report

import (
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
)

// PeriodResult is the reconciled map for one employee set and date range.
// Keys of Days are employee IDs, inner keys are ISO dates. Errors holds the
// per-employee fetch failures that were isolated from the rest of the batch.
type PeriodResult struct {
	From   time.Time
	To     time.Time
	Days   map[string]map[string]timesheet.DayClassification
	Names  map[string]string
	Errors map[string]error
}

// EmployeeSummary is the per-employee roll-up over one period. It reconciles
// exactly with the per-day records it was derived from.
type EmployeeSummary struct {
	EmployeeID        string             `json:"employee_id"`
	Name              string             `json:"name"`
	PresenceDays      int                `json:"presence_days"`
	UnexcusedAbsences int                `json:"unexcused_absences"`
	LeaveTallies      map[leave.Code]int `json:"leave_tallies"`
	LatenessCount     int                `json:"lateness_count"`
	LatenessMinutes   int                `json:"lateness_minutes"`
	LatenessHours     float64            `json:"lateness_hours"`
	MissingMinutes    int                `json:"missing_minutes"`
	DeltaMinutes      int                `json:"delta_minutes"`
	DeltaDisplay      string             `json:"delta_display"`
	Balance           *leave.Balance     `json:"balance,omitempty"`
}

// ExportSource is the memoized per-month payload handed to document
// generation. Keyed by (employeeID, year, month); the cache has no eviction
// because exported periods are finite and scoped to one export session.
type ExportSource struct {
	EmployeeID string                  `json:"employee_id"`
	Name       string                  `json:"name"`
	Year       int                     `json:"year"`
	Month      int                     `json:"month"`
	Days       []timesheet.DayResponse `json:"days"`
	Summary    EmployeeSummary         `json:"summary"`
}
