package leave

import (
	"time"
)

// Code is a canonical leave code. The set is closed: anything the normalizer
// cannot map lands on CodeNone, never on a truncated guess.
type Code string

const (
	CodeNone        Code = ""
	CodeAnnual      Code = "AL"
	CodeSick        Code = "SL"
	CodeEmergency   Code = "EL"
	CodeUnpaid      Code = "UL"
	CodeMaternity   Code = "ML"
	CodeExceptional Code = "XL"
	CodeBereaved1   Code = "B1"
	CodeBereaved2   Code = "B2"
	CodeHalfDay     Code = "HL"
	CodeMission     Code = "BM"
	CodeHoliday     Code = "PH"
	CodeHolidayFood Code = "PHF"
	CodeFood        Code = "PT"
	CodeLate        Code = "PL"
)

var canonicalCodes = map[Code]struct{}{
	CodeAnnual:      {},
	CodeSick:        {},
	CodeEmergency:   {},
	CodeUnpaid:      {},
	CodeMaternity:   {},
	CodeExceptional: {},
	CodeBereaved1:   {},
	CodeBereaved2:   {},
	CodeHalfDay:     {},
	CodeMission:     {},
	CodeHoliday:     {},
	CodeHolidayFood: {},
	CodeFood:        {},
	CodeLate:        {},
}

// Valid reports whether c is a member of the canonical set.
func (c Code) Valid() bool {
	_, ok := canonicalCodes[c]
	return ok
}

// Canonical returns the closed code set, for totality checks and catalogues.
func Canonical() []Code {
	codes := make([]Code, 0, len(canonicalCodes))
	for c := range canonicalCodes {
		codes = append(codes, c)
	}
	return codes
}

const StatusApproved = "approved"

// Request is one leave request as returned by the attendance backend.
// Only approved requests contribute to the overlay.
type Request struct {
	EmployeeID string
	Status     string
	StartDate  time.Time
	EndDate    time.Time
	TypeCode   Code
	TypeID     *string
	TypeName   *string
}

// Type is one entry of the backend leave-type catalogue, used to map numeric
// leave-type IDs to canonical codes.
type Type struct {
	ID   string
	Code Code
	Name string
}

// Balance holds the backend's authoritative balance figures. Preferred over
// locally recomputed totals whenever present.
type Balance struct {
	EmployeeID  string
	Entitlement float64
	Used        float64
	Remaining   float64
}

// VacationSpan is an approved-absence span from the secondary overlay source.
type VacationSpan struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	State      string
	Type       string
}

// Overlay maps (employeeID, ISO date) to the canonical leave code in effect
// on that date. Rebuilt whenever the employee set or period changes.
type Overlay map[string]map[string]Code

// CodeFor returns the overlay code for one employee/date, or CodeNone.
func (o Overlay) CodeFor(employeeID, isoDate string) Code {
	if days, ok := o[employeeID]; ok {
		return days[isoDate]
	}
	return CodeNone
}

// Set records a code for one employee/date. Existing entries are kept: the
// primary source (leave requests) is applied before secondary vacation spans.
func (o Overlay) Set(employeeID, isoDate string, code Code) {
	if !code.Valid() {
		return
	}
	days, ok := o[employeeID]
	if !ok {
		days = make(map[string]Code)
		o[employeeID] = days
	}
	if _, exists := days[isoDate]; !exists {
		days[isoDate] = code
	}
}
