package timesheet

import (
	"testing"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/employee"
	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var fullSchedule = employee.Schedule{StartTime: "08:00", EndTime: "16:00"}

// 2024-06-10 is a Monday, 2024-06-14 a Friday.

func TestClassify_BeforeContractStart(t *testing.T) {
	start := date(2024, 6, 15)
	cls := Classify(DayInput{
		Date:          date(2024, 6, 10),
		ContractStart: &start,
		Punch: &timesheet.PunchRecord{
			Entry: strPtr("08:00"),
			Exit:  strPtr("16:00"),
		},
	})

	assert.Equal(t, "X", cls.CenterCode)
	assert.False(t, cls.HasPresence, "pre-employment days carry no presence")
	assert.False(t, cls.IsAbsentUnexcused)
}

func TestClassify_HolidayWorkedFullDay(t *testing.T) {
	cls := Classify(DayInput{
		Date:      date(2024, 6, 10),
		IsHoliday: true,
		Schedule:  fullSchedule,
		Punch: &timesheet.PunchRecord{
			Entry: strPtr("08:00"),
			Exit:  strPtr("16:00"),
		},
	})

	assert.Equal(t, "PHF", cls.CenterCode)
	assert.True(t, cls.HasPresence)
}

func TestClassify_HolidayWorkedPartialDay(t *testing.T) {
	cls := Classify(DayInput{
		Date:      date(2024, 6, 10),
		IsHoliday: true,
		Schedule:  fullSchedule,
		Punch: &timesheet.PunchRecord{
			Entry: strPtr("08:00"),
			Exit:  strPtr("12:00"),
		},
	})

	assert.Equal(t, "PH", cls.CenterCode)
}

func TestClassify_FridayWorked(t *testing.T) {
	cls := Classify(DayInput{
		Date:     date(2024, 6, 14),
		Schedule: fullSchedule,
		Punch: &timesheet.PunchRecord{
			Entry: strPtr("08:00"),
			Exit:  strPtr("16:00"),
		},
	})

	assert.True(t, cls.IsFriday)
	assert.Equal(t, "PHF", cls.CenterCode)
}

func TestClassify_LeaveOverlay(t *testing.T) {
	cls := Classify(DayInput{
		Date:      date(2024, 6, 10),
		LeaveCode: leave.CodeSick,
	})

	assert.Equal(t, "SL", cls.CenterCode)
	assert.False(t, cls.IsAbsentUnexcused)
}

func TestClassify_PresenceBeatsStaleAbsentLabel(t *testing.T) {
	cls := Classify(DayInput{
		Date: date(2024, 6, 10),
		Punch: &timesheet.PunchRecord{
			Entry:      strPtr("08:05"),
			Exit:       strPtr("16:00"),
			StatusCode: strPtr("A"),
		},
	})

	assert.Equal(t, "P", cls.CenterCode)
	assert.False(t, cls.IsAbsentUnexcused)
}

func TestClassify_PresenceKeepsRawPresenceMarkers(t *testing.T) {
	for _, raw := range []string{"PT", "PL"} {
		cls := Classify(DayInput{
			Date: date(2024, 6, 10),
			Punch: &timesheet.PunchRecord{
				Entry:      strPtr("08:00"),
				StatusCode: strPtr(raw),
			},
		})
		assert.Equal(t, raw, cls.CenterCode)
	}
}

func TestClassify_PresentFlagWithoutPunchTimes(t *testing.T) {
	cls := Classify(DayInput{
		Date:     date(2024, 6, 10),
		MonthDay: &timesheet.Day{Day: 10, Present: true},
	})

	assert.True(t, cls.HasPresence)
	assert.Equal(t, "P", cls.CenterCode)
}

func TestClassify_AbsentOnWeekday(t *testing.T) {
	cls := Classify(DayInput{
		Date:     date(2024, 6, 10),
		MonthDay: &timesheet.Day{Day: 10, Code: "A"},
	})

	assert.Equal(t, "A", cls.CenterCode)
	assert.True(t, cls.IsAbsentUnexcused)
}

func TestClassify_AbsentOnHolidaySuppressed(t *testing.T) {
	cls := Classify(DayInput{
		Date:      date(2024, 6, 10),
		IsHoliday: true,
		MonthDay:  &timesheet.Day{Day: 10, Code: "A"},
	})

	assert.Equal(t, "", cls.CenterCode)
	assert.False(t, cls.IsAbsentUnexcused)
}

func TestClassify_FridayWithoutDataSuppressed(t *testing.T) {
	cls := Classify(DayInput{Date: date(2024, 6, 14)})

	assert.True(t, cls.IsFriday)
	assert.Equal(t, "", cls.CenterCode)
	assert.False(t, cls.IsAbsentUnexcused)
}

func TestClassify_EmptyDay(t *testing.T) {
	cls := Classify(DayInput{Date: date(2024, 6, 10)})

	assert.Equal(t, "", cls.CenterCode)
	assert.False(t, cls.HasPresence)
	assert.False(t, cls.IsAbsentUnexcused)
}

func TestClassify_OverrideOutranksPunch(t *testing.T) {
	cls := Classify(DayInput{
		Date: date(2024, 6, 10),
		Override: &timesheet.PunchRecord{
			Entry: strPtr("09:00"),
		},
		Punch: &timesheet.PunchRecord{
			Entry: strPtr("08:00"),
			Exit:  strPtr("16:00"),
		},
	})

	assert.Equal(t, "09:00", *cls.Entry)
	assert.Equal(t, "16:00", *cls.Exit) // punch still fills the gap
}

func TestClassify_ZonedPunchesRebasedToDisplayOffset(t *testing.T) {
	cls := Classify(DayInput{
		Date:          date(2024, 6, 10),
		OffsetMinutes: 120,
		Punch: &timesheet.PunchRecord{
			Entry: strPtr("2024-06-10T06:00:00Z"),
			Exit:  strPtr("2024-06-10T14:00:00Z"),
		},
	})

	assert.Equal(t, "08:00", *cls.Entry)
	assert.Equal(t, "16:00", *cls.Exit)
}
