package attendanceapi

import (
	"strings"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/employee"
)

// The backend's employee payloads are loosely typed and drifted over the
// years: the same field shows up under several spellings depending on which
// upstream system wrote the record. This adapter is the single place that
// absorbs the variants; everything past this boundary sees only the
// canonical shapes.

var contractStartKeys = []string{
	"contract_start", "contractStart", "contract_start_date",
	"hire_date", "hireDate", "employment_start", "start_date",
}

var scheduleStartKeys = []string{"schedule_start", "work_start", "start_time", "shift_start"}
var scheduleEndKeys = []string{"schedule_end", "work_end", "end_time", "shift_end"}
var nameKeys = []string{"name", "full_name", "employee_name"}
var jobTitleKeys = []string{"job_title", "title", "position"}
var psKeys = []string{"ps", "ps_point", "service_point"}

func adaptEmployee(row map[string]interface{}) employee.Employee {
	emp := employee.Employee{
		ID:   firstString(row, "id", "employee_id"),
		Name: firstString(row, nameKeys...),
		Schedule: employee.Schedule{
			StartTime: firstString(row, scheduleStartKeys...),
			EndTime:   firstString(row, scheduleEndKeys...),
		},
	}
	if title := firstString(row, jobTitleKeys...); title != "" {
		emp.Schedule.JobTitle = &title
	}
	if ps := firstString(row, psKeys...); ps != "" {
		emp.PS = &ps
	}
	emp.ContractStart = firstDate(row, contractStartKeys...)
	return emp
}

// firstString returns the first non-empty string among the listed keys.
func firstString(row map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := row[key]; ok {
			if s, ok := v.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

// firstDate parses the first usable date among the listed keys. Accepts
// plain ISO dates and full timestamps; anything else yields nil, which
// downstream treats as "unknown" rather than an error.
func firstDate(row map[string]interface{}, keys ...string) *time.Time {
	raw := firstString(row, keys...)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}
