package timesheet

import (
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
)

// AttendanceCode is a resolved timesheet status. It shares letters with some
// leave codes but is a distinct namespace: PT/PL here are presence markers
// (food allowance, arrived late), never leave entries.
type AttendanceCode string

const (
	CodePresent         AttendanceCode = "P"
	CodeAbsent          AttendanceCode = "A"
	CodePresentFood     AttendanceCode = "PT"
	CodePresentLate     AttendanceCode = "PL"
	CodePaidHoliday     AttendanceCode = "PH"
	CodePaidHolidayFood AttendanceCode = "PHF"

	// CodeNotEmployed is the sentinel for days before the employee's
	// contract start. It is not an absence and joins no totals.
	CodeNotEmployed AttendanceCode = "X"
)

// PunchRecord is one employee/day of raw punch data, either ingested from the
// clock or written through the manual correction API. Read-only to the
// classifier.
type PunchRecord struct {
	EmployeeID string
	Date       time.Time
	Entry      *string
	Exit       *string
	StatusCode *string
	Reason     *string
	Comment    *string
}

// Day is one row of the backend's monthly timesheet endpoint. It is the
// fallback source when a range query predates the authoritative per-day edit.
type Day struct {
	Day         int
	Code        string
	Reason      *string
	Comment     *string
	Entry       *string
	Exit        *string
	Present     bool
	IsHoliday   bool
	WorkMin     *int
	ExpectedMin *int
	DeltaMin    *int
}

// DayClassification is the resolved output for one employee/day. Derived on
// demand, never persisted: the grid and every summary consume this one shape,
// so the two views cannot diverge.
type DayClassification struct {
	Date              time.Time
	CenterCode        string
	LeaveCode         leave.Code
	IsHoliday         bool
	IsFriday          bool
	HasPresence       bool
	IsAbsentUnexcused bool
	Entry             *string
	Exit              *string
	WorkMin           *int
	ExpectedMin       *int
	DeltaMin          *int
	IsLate            bool
	LateMinutes       *int
}

// RangeEmployee groups the punch records of one employee inside a range
// query, with the PS point the employee is assigned to.
type RangeEmployee struct {
	ID   string
	Name string
	PS   *string
	Days []PunchRecord
}

// RangeResult is the shape of a range-punch query.
type RangeResult struct {
	Employees []RangeEmployee
}
