package timesheet

import (
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/employee"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
	"github.com/atlashr/timesheet-backend-go/internal/pkg/timeclock"
)

// LateThresholdMinutes is how far past the scheduled start an entry has to be
// before the day is flagged late.
const LateThresholdMinutes = 30

// ComputeDayMetrics fills the worked/expected/delta figures on a classified
// day. Expected and delta minutes exist only for days strictly before now:
// an in-progress day has no determinable shortfall, so it reports nil rather
// than zero. Missing schedule or unparsable punches degrade the affected
// metric to nil; they never abort the caller's period.
func ComputeDayMetrics(cls *timesheet.DayClassification, sched employee.Schedule, now time.Time) {
	if cls.CenterCode == string(timesheet.CodeNotEmployed) {
		cls.WorkMin = nil
		cls.ExpectedMin = nil
		cls.DeltaMin = nil
		return
	}

	entry := deref(cls.Entry)
	exit := deref(cls.Exit)

	if wm := timeclock.WorkMinutes(entry, exit); wm != nil && *wm >= 0 {
		cls.WorkMin = wm
	}
	// else keep the pre-computed workMin carried over from the day record

	past := cls.Date.Format("2006-01-02") < now.Format("2006-01-02")

	if past && sched.Complete() {
		cls.ExpectedMin = timeclock.WorkMinutes(sched.StartTime, sched.EndTime)
	} else {
		cls.ExpectedMin = nil
	}

	if past && cls.WorkMin != nil && cls.ExpectedMin != nil {
		delta := *cls.WorkMin - *cls.ExpectedMin
		cls.DeltaMin = &delta
	} else {
		cls.DeltaMin = nil
	}

	if entry != "" && sched.StartTime != "" {
		if late := timeclock.MinutesAfter(entry, sched.StartTime); late != nil && *late > 0 {
			cls.LateMinutes = late
			cls.IsLate = *late >= LateThresholdMinutes
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
