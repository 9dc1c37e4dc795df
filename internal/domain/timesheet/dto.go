package timesheet

import (
	"github.com/atlashr/timesheet-backend-go/internal/pkg/validator"
)

// UpdateRequest is the sole write path to the attendance backend. Local state
// stays provisional until the write succeeds and the month is re-fetched.
type UpdateRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	StatusCode *string `json:"status_code,omitempty"`
	Reason     *string `json:"reason,omitempty"`
	Comment    *string `json:"comment,omitempty"`
	Entry      *string `json:"entry,omitempty"`
	Exit       *string `json:"exit,omitempty"`
}

func (r UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.Entry != nil && *r.Entry != "" && !validator.IsValidClock(*r.Entry) {
		errs = append(errs, validator.ValidationError{Field: "entry", Message: "entry must be HH:mm"})
	}
	if r.Exit != nil && *r.Exit != "" && !validator.IsValidClock(*r.Exit) {
		errs = append(errs, validator.ValidationError{Field: "exit", Message: "exit must be HH:mm"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RangeFilter narrows a range-punch query to one employee or PS point.
type RangeFilter struct {
	EmployeeID *string
	PS         *string
}

// DayResponse is the JSON shape of one classified day.
type DayResponse struct {
	Date              string  `json:"date"`
	CenterCode        string  `json:"center_code"`
	LeaveCode         string  `json:"leave_code,omitempty"`
	IsHoliday         bool    `json:"is_holiday"`
	IsFriday          bool    `json:"is_friday"`
	HasPresence       bool    `json:"has_presence"`
	IsAbsentUnexcused bool    `json:"is_absent_unexcused"`
	Entry             *string `json:"entry,omitempty"`
	Exit              *string `json:"exit,omitempty"`
	WorkMin           *int    `json:"work_min,omitempty"`
	ExpectedMin       *int    `json:"expected_min,omitempty"`
	DeltaMin          *int    `json:"delta_min,omitempty"`
	DeltaDisplay      string  `json:"delta_display,omitempty"`
	IsLate            bool    `json:"is_late"`
}
