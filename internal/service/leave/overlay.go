package leave

import (
	"strings"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
)

// BuildOverlay expands approved leave requests day-by-day into per-date
// overlay entries, clamped to the visible window. Vacation spans are the
// secondary source and never overwrite a request-derived entry. Requests in
// any other state than approved contribute nothing.
func BuildOverlay(
	requests []leave.Request,
	vacations []leave.VacationSpan,
	typesByID map[string]leave.Code,
	from, to time.Time,
) leave.Overlay {
	overlay := make(leave.Overlay)

	for _, req := range requests {
		if !strings.EqualFold(req.Status, leave.StatusApproved) {
			continue
		}
		code := resolveCode(req, typesByID)
		if !code.Valid() {
			continue
		}
		expandSpan(overlay, req.EmployeeID, req.StartDate, req.EndDate, code, from, to)
	}

	for _, vac := range vacations {
		if !strings.EqualFold(vac.State, leave.StatusApproved) {
			continue
		}
		code := NormalizeCode(vac.Type)
		if !code.Valid() {
			code = leave.CodeAnnual
		}
		expandSpan(overlay, vac.EmployeeID, vac.StartDate, vac.EndDate, code, from, to)
	}

	return overlay
}

// resolveCode prefers the request's own code, then the catalogue mapping for
// its type ID, then a normalization of the free-text type name.
func resolveCode(req leave.Request, typesByID map[string]leave.Code) leave.Code {
	if req.TypeCode.Valid() {
		return req.TypeCode
	}
	if req.TypeID != nil {
		if code, ok := typesByID[*req.TypeID]; ok && code.Valid() {
			return code
		}
	}
	if req.TypeName != nil {
		return NormalizeCode(*req.TypeName)
	}
	return leave.CodeNone
}

func expandSpan(overlay leave.Overlay, employeeID string, start, end time.Time, code leave.Code, from, to time.Time) {
	start = dateOnly(start)
	end = dateOnly(end)
	if start.Before(dateOnly(from)) {
		start = dateOnly(from)
	}
	if end.After(dateOnly(to)) {
		end = dateOnly(to)
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		overlay.Set(employeeID, d.Format("2006-01-02"), code)
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
