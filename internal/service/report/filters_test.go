package report

import (
	"testing"

	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
	"github.com/atlashr/timesheet-backend-go/internal/domain/report"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
)

func filterFixture() report.PeriodResult {
	return report.PeriodResult{
		Days: map[string]map[string]timesheet.DayClassification{
			"e1": {
				"2024-06-10": {CenterCode: "P", HasPresence: true},
				"2024-06-11": {CenterCode: "A", IsAbsentUnexcused: true},
				"2024-06-12": {CenterCode: "SL", LeaveCode: leave.CodeSick},
				"2024-06-13": {CenterCode: "PH", IsHoliday: true, HasPresence: true},
				"2024-06-14": {CenterCode: "", IsFriday: true},
			},
			"e2": {
				"2024-06-10": {CenterCode: "P", HasPresence: true},
			},
		},
		Names: map[string]string{"e1": "Sami", "e2": "Lina"},
	}
}

func TestOnlyAbsent(t *testing.T) {
	result := filterFixture()
	filtered := OnlyAbsent(result)

	assert.Len(t, filtered.Days["e1"], 1)
	assert.Contains(t, filtered.Days["e1"], "2024-06-11")
	assert.NotContains(t, filtered.Days, "e2", "employees with no matching days drop out")
}

func TestOnlyOnLeave(t *testing.T) {
	filtered := OnlyOnLeave(filterFixture())

	assert.Len(t, filtered.Days["e1"], 1)
	assert.Contains(t, filtered.Days["e1"], "2024-06-12")
}

func TestOnlyHolidayWorked(t *testing.T) {
	filtered := OnlyHolidayWorked(filterFixture())

	assert.Len(t, filtered.Days["e1"], 1)
	assert.Contains(t, filtered.Days["e1"], "2024-06-13")
}

func TestFiltersArePure(t *testing.T) {
	result := filterFixture()
	_ = OnlyAbsent(result)
	_ = OnlyOnLeave(result)
	_ = OnlyHolidayWorked(result)

	assert.Len(t, result.Days["e1"], 5, "the source result is never mutated")
	assert.Len(t, result.Days["e2"], 1)
}

func TestToDayResponse(t *testing.T) {
	delta := 45
	entry := "08:00"
	cls := timesheet.DayClassification{
		CenterCode:  "P",
		HasPresence: true,
		Entry:       &entry,
		DeltaMin:    &delta,
	}

	resp := ToDayResponse("2024-06-10", cls)

	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "P", resp.CenterCode)
	assert.Equal(t, "08:00", *resp.Entry)
	assert.Equal(t, "+1h", resp.DeltaDisplay)
}
