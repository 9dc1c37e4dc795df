package attendanceapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptEmployee_CanonicalSpelling(t *testing.T) {
	emp := adaptEmployee(map[string]interface{}{
		"id":             "e1",
		"name":           "Sami Haddad",
		"contract_start": "2024-01-15",
		"schedule_start": "08:00",
		"schedule_end":   "16:00",
		"job_title":      "Technician",
		"ps":             "PS-3",
	})

	assert.Equal(t, "e1", emp.ID)
	assert.Equal(t, "Sami Haddad", emp.Name)
	require.NotNil(t, emp.ContractStart)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *emp.ContractStart)
	assert.Equal(t, "08:00", emp.Schedule.StartTime)
	assert.Equal(t, "16:00", emp.Schedule.EndTime)
	require.NotNil(t, emp.Schedule.JobTitle)
	assert.Equal(t, "Technician", *emp.Schedule.JobTitle)
	require.NotNil(t, emp.PS)
	assert.Equal(t, "PS-3", *emp.PS)
}

func TestAdaptEmployee_LegacySpellings(t *testing.T) {
	emp := adaptEmployee(map[string]interface{}{
		"employee_id":   "e2",
		"full_name":     "Lina Aziz",
		"hireDate":      "2023-09-01T00:00:00Z",
		"work_start":    "09:00",
		"shift_end":     "17:00",
		"service_point": "PS-1",
	})

	assert.Equal(t, "e2", emp.ID)
	assert.Equal(t, "Lina Aziz", emp.Name)
	require.NotNil(t, emp.ContractStart)
	assert.Equal(t, time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC), *emp.ContractStart)
	assert.Equal(t, "09:00", emp.Schedule.StartTime)
	assert.Equal(t, "17:00", emp.Schedule.EndTime)
}

func TestAdaptEmployee_MissingFieldsDegradeToUnknown(t *testing.T) {
	emp := adaptEmployee(map[string]interface{}{
		"id":         "e3",
		"name":       "  ",
		"hire_date":  "not a date",
		"start_time": 900, // wrong type, ignored
	})

	assert.Equal(t, "e3", emp.ID)
	assert.Equal(t, "", emp.Name)
	assert.Nil(t, emp.ContractStart, "unparsable dates yield unknown, not an error")
	assert.False(t, emp.Schedule.Complete())
	assert.Nil(t, emp.PS)
}

func TestFirstString_PrecedenceAndTrimming(t *testing.T) {
	row := map[string]interface{}{
		"name":      "",
		"full_name": "  Lina Aziz  ",
	}
	assert.Equal(t, "Lina Aziz", firstString(row, "name", "full_name"))
	assert.Equal(t, "", firstString(row, "missing"))
}
