package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/report"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
	"github.com/atlashr/timesheet-backend-go/internal/handler/http/response"
	reportService "github.com/atlashr/timesheet-backend-go/internal/service/report"
)

type TimesheetHandler interface {
	Grid(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
	reportService    report.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service, reportService report.Service) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
		reportService:    reportService,
	}
}

type gridEmployee struct {
	ID    string                  `json:"id"`
	Name  string                  `json:"name"`
	Days  []timesheet.DayResponse `json:"days"`
	Error string                  `json:"error,omitempty"`
}

type gridResponse struct {
	From      string         `json:"from"`
	To        string         `json:"to"`
	Employees []gridEmployee `json:"employees"`
}

// Grid implements TimesheetHandler. Query params: from, to (YYYY-MM-DD),
// employee_ids (comma-separated), and an optional filter of
// absent|leave|holiday-worked.
func (h *timesheetHandlerImpl) Grid(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		response.BadRequest(w, "Query param 'from' must be YYYY-MM-DD", nil)
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, "Query param 'to' must be YYYY-MM-DD", nil)
		return
	}

	var employeeIDs []string
	for _, id := range strings.Split(r.URL.Query().Get("employee_ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			employeeIDs = append(employeeIDs, id)
		}
	}
	if len(employeeIDs) == 0 {
		response.BadRequest(w, "Query param 'employee_ids' is required", nil)
		return
	}

	result, err := h.reportService.Reconcile(r.Context(), employeeIDs, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch r.URL.Query().Get("filter") {
	case "":
	case "absent":
		result = reportService.OnlyAbsent(result)
	case "leave":
		result = reportService.OnlyOnLeave(result)
	case "holiday-worked":
		result = reportService.OnlyHolidayWorked(result)
	default:
		response.BadRequest(w, "Unknown filter, expected absent|leave|holiday-worked", nil)
		return
	}

	response.Success(w, toGridResponse(result, employeeIDs))
}

func toGridResponse(result report.PeriodResult, employeeIDs []string) gridResponse {
	resp := gridResponse{
		From: result.From.Format("2006-01-02"),
		To:   result.To.Format("2006-01-02"),
	}

	for _, id := range employeeIDs {
		emp := gridEmployee{ID: id, Name: result.Names[id]}
		if fetchErr, ok := result.Errors[id]; ok {
			emp.Error = fetchErr.Error()
		}

		days := result.Days[id]
		dates := make([]string, 0, len(days))
		for date := range days {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			emp.Days = append(emp.Days, reportService.ToDayResponse(date, days[date]))
		}

		resp.Employees = append(resp.Employees, emp)
	}
	return resp
}

// Update implements TimesheetHandler.
func (h *timesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	days, err := h.timesheetService.UpdateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", days)
}
