package response

import (
	"errors"
	"net/http"

	"github.com/atlashr/timesheet-backend-go/internal/domain/employee"
	"github.com/atlashr/timesheet-backend-go/internal/domain/holiday"
	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
	"github.com/atlashr/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrUpdateRejected):
		BadGateway(w, "Attendance update rejected by backend")
	case errors.Is(err, timesheet.ErrMonthUnavailable):
		BadGateway(w, "Timesheet month unavailable")
	case errors.Is(err, timesheet.ErrSuperseded):
		Conflict(w, "Reconciliation superseded by a newer request")
	case errors.Is(err, timesheet.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrBalanceUnavailable):
		BadGateway(w, "Leave balance unavailable")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already registered for that date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
