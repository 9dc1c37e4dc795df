package report

import (
	"github.com/atlashr/timesheet-backend-go/internal/domain/report"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
)

// The filters below are pure: each builds a fresh result restricted to the
// days matching the predicate, never mutating the underlying records.

// OnlyAbsent keeps the days whose resolved classification is an unexcused
// absence.
func OnlyAbsent(result report.PeriodResult) report.PeriodResult {
	return filterDays(result, func(day timesheet.DayClassification) bool {
		return day.IsAbsentUnexcused
	})
}

// OnlyOnLeave keeps the days carrying a leave overlay code.
func OnlyOnLeave(result report.PeriodResult) report.PeriodResult {
	return filterDays(result, func(day timesheet.DayClassification) bool {
		return day.LeaveCode.Valid()
	})
}

// OnlyHolidayWorked keeps holiday/Friday days with presence evidence, the
// PH/PHF population.
func OnlyHolidayWorked(result report.PeriodResult) report.PeriodResult {
	return filterDays(result, func(day timesheet.DayClassification) bool {
		return (day.IsHoliday || day.IsFriday) && day.HasPresence
	})
}

func filterDays(result report.PeriodResult, keep func(timesheet.DayClassification) bool) report.PeriodResult {
	filtered := report.PeriodResult{
		From:   result.From,
		To:     result.To,
		Days:   make(map[string]map[string]timesheet.DayClassification),
		Names:  result.Names,
		Errors: result.Errors,
	}

	for employeeID, days := range result.Days {
		kept := make(map[string]timesheet.DayClassification)
		for date, day := range days {
			if keep(day) {
				kept[date] = day
			}
		}
		if len(kept) > 0 {
			filtered.Days[employeeID] = kept
		}
	}

	return filtered
}
