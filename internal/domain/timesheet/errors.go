package timesheet

import "errors"

var (
	ErrUpdateRejected   = errors.New("attendance update rejected by backend")
	ErrMonthUnavailable = errors.New("timesheet month unavailable")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSuperseded       = errors.New("reconciliation superseded by a newer request")
)
