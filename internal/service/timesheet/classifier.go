package timesheet

import (
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/employee"
	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
	"github.com/atlashr/timesheet-backend-go/internal/pkg/timeclock"
)

// DayInput gathers the independent, partially missing sources for one
// employee/day. Override is a manual correction and outranks Punch; Punch
// outranks the monthly day record.
type DayInput struct {
	Date          time.Time
	Override      *timesheet.PunchRecord
	Punch         *timesheet.PunchRecord
	MonthDay      *timesheet.Day
	LeaveCode     leave.Code
	IsHoliday     bool
	ContractStart *time.Time
	Schedule      employee.Schedule
	OffsetMinutes int
}

// Classify resolves one day through the ordered rule table. First applicable
// rule wins; the precedence is the contract, not an implementation detail:
//
//  1. date before contract start: "X" sentinel, excluded from all totals
//  2. holiday/Friday with presence: PHF when a full expected day was worked,
//     else PH
//  3. leave overlay code
//  4. presence: raw PT/PL kept, anything else (including a stale "A")
//     becomes P
//  5. raw status code without presence, except A on a holiday is suppressed
//  6. Friday without presence or leave is suppressed
//  7. empty
func Classify(in DayInput) timesheet.DayClassification {
	cls := timesheet.DayClassification{
		Date:      in.Date,
		LeaveCode: in.LeaveCode,
		IsHoliday: in.IsHoliday,
		IsFriday:  in.Date.Weekday() == time.Friday,
	}

	entry, exit := resolveTimes(in)
	if entry != "" {
		cls.Entry = &entry
	}
	if exit != "" {
		cls.Exit = &exit
	}
	if in.MonthDay != nil {
		cls.WorkMin = in.MonthDay.WorkMin
	}

	cls.HasPresence = hasPresence(in, entry, exit)
	rawCode := resolveRawCode(in)
	dayOff := cls.IsHoliday || cls.IsFriday

	switch {
	case beforeContract(in):
		cls.CenterCode = string(timesheet.CodeNotEmployed)
		cls.HasPresence = false

	case dayOff && cls.HasPresence:
		if workedFullDay(entry, exit, in.Schedule) {
			cls.CenterCode = string(timesheet.CodePaidHolidayFood)
		} else {
			cls.CenterCode = string(timesheet.CodePaidHoliday)
		}

	case in.LeaveCode.Valid():
		cls.CenterCode = string(in.LeaveCode)

	case cls.HasPresence:
		switch rawCode {
		case string(timesheet.CodePresentFood), string(timesheet.CodePresentLate):
			cls.CenterCode = rawCode
		default:
			// presence evidence outranks a stale "Absent" label
			cls.CenterCode = string(timesheet.CodePresent)
		}

	case rawCode != "":
		if rawCode == string(timesheet.CodeAbsent) && cls.IsHoliday {
			cls.CenterCode = ""
		} else {
			cls.CenterCode = rawCode
		}

	case cls.IsFriday:
		cls.CenterCode = ""

	default:
		cls.CenterCode = ""
	}

	cls.IsAbsentUnexcused = cls.CenterCode == string(timesheet.CodeAbsent) &&
		!cls.IsHoliday &&
		!in.LeaveCode.Valid()

	return cls
}

// hasPresence is evidence-based: the present flag, or an entry, or an exit.
// Never inferred from the status code alone.
func hasPresence(in DayInput, entry, exit string) bool {
	if in.MonthDay != nil && in.MonthDay.Present {
		return true
	}
	return entry != "" || exit != ""
}

func beforeContract(in DayInput) bool {
	if in.ContractStart == nil {
		return false
	}
	day := in.Date.Format("2006-01-02")
	start := in.ContractStart.Format("2006-01-02")
	return day < start
}

// resolveTimes walks the source precedence (override, punch, monthly record)
// and normalizes whatever it finds to display-local "HH:mm".
func resolveTimes(in DayInput) (entry, exit string) {
	for _, rec := range []*timesheet.PunchRecord{in.Override, in.Punch} {
		if rec == nil {
			continue
		}
		if entry == "" && rec.Entry != nil {
			entry = timeclock.NormalizeZoned(*rec.Entry, in.OffsetMinutes)
		}
		if exit == "" && rec.Exit != nil {
			exit = timeclock.NormalizeZoned(*rec.Exit, in.OffsetMinutes)
		}
	}
	if in.MonthDay != nil {
		if entry == "" && in.MonthDay.Entry != nil {
			entry = timeclock.NormalizeZoned(*in.MonthDay.Entry, in.OffsetMinutes)
		}
		if exit == "" && in.MonthDay.Exit != nil {
			exit = timeclock.NormalizeZoned(*in.MonthDay.Exit, in.OffsetMinutes)
		}
	}
	return entry, exit
}

func resolveRawCode(in DayInput) string {
	if in.Override != nil && in.Override.StatusCode != nil && *in.Override.StatusCode != "" {
		return *in.Override.StatusCode
	}
	if in.Punch != nil && in.Punch.StatusCode != nil && *in.Punch.StatusCode != "" {
		return *in.Punch.StatusCode
	}
	if in.MonthDay != nil {
		return in.MonthDay.Code
	}
	return ""
}

// workedFullDay reports whether the worked span covers the scheduled span.
// Unknown schedule or unparsable punches count as not-full.
func workedFullDay(entry, exit string, sched employee.Schedule) bool {
	if !sched.Complete() {
		return false
	}
	worked := timeclock.WorkMinutes(entry, exit)
	expected := timeclock.WorkMinutes(sched.StartTime, sched.EndTime)
	if worked == nil || expected == nil {
		return false
	}
	return *worked >= *expected
}
