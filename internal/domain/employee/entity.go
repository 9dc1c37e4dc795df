package employee

import "time"

// Schedule is the expected working window from the employee master record.
// Start/End are "HH:mm"; either may be empty when the record is incomplete,
// in which case expected minutes degrade to unknown rather than zero.
type Schedule struct {
	StartTime string
	EndTime   string
	JobTitle  *string
}

// Complete reports whether both ends of the window are defined.
func (s Schedule) Complete() bool {
	return s.StartTime != "" && s.EndTime != ""
}

type Employee struct {
	ID            string
	Name          string
	PS            *string
	ContractStart *time.Time
	Schedule      Schedule
}
