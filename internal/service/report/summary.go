package report

import (
	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
	"github.com/atlashr/timesheet-backend-go/internal/domain/report"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
	"github.com/atlashr/timesheet-backend-go/internal/pkg/timeclock"
)

// Summarize rolls one employee's classified days up into the period summary.
// It is a pure pass over the per-day records, so the summary reconciles
// exactly with the grid built from the same map.
//
// Counting rules:
//   - "X" sentinel days (pre-employment) join no total whatsoever
//   - sick leave counts toward the leave tally even on a Friday/holiday;
//     every other leave type is suppressed there, so a day that is already
//     a day off is not double-credited
//   - missing minutes sum min(0, delta) and exclude Fridays, holidays and
//     leave days
func Summarize(employeeID, name string, days map[string]timesheet.DayClassification) report.EmployeeSummary {
	summary := report.EmployeeSummary{
		EmployeeID:   employeeID,
		Name:         name,
		LeaveTallies: make(map[leave.Code]int),
	}

	for _, day := range days {
		if day.CenterCode == string(timesheet.CodeNotEmployed) {
			continue
		}

		if day.HasPresence {
			summary.PresenceDays++
		}
		if day.IsAbsentUnexcused {
			summary.UnexcusedAbsences++
		}

		if day.LeaveCode.Valid() {
			countsAsLeave := day.LeaveCode == leave.CodeSick || (!day.IsFriday && !day.IsHoliday)
			if countsAsLeave {
				summary.LeaveTallies[day.LeaveCode]++
			}
		}

		if day.LateMinutes != nil && *day.LateMinutes > 0 {
			summary.LatenessMinutes += *day.LateMinutes
			if day.IsLate {
				summary.LatenessCount++
			}
		}

		if day.DeltaMin != nil {
			summary.DeltaMinutes += *day.DeltaMin

			dayOffOrLeave := day.IsFriday || day.IsHoliday || day.LeaveCode.Valid()
			if *day.DeltaMin < 0 && !dayOffOrLeave {
				summary.MissingMinutes += *day.DeltaMin
			}
		}
	}

	summary.LatenessHours = float64(summary.LatenessMinutes) / 60.0
	summary.DeltaDisplay = timeclock.RoundedHoursWithSign(summary.DeltaMinutes)

	return summary
}
