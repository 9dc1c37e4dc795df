package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/report"
	"github.com/atlashr/timesheet-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	ExportSource(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Summary implements ReportHandler.
func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
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

	summaries, err := h.reportService.Summaries(r.Context(), result)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// ExportSource implements ReportHandler.
func (h *reportHandlerImpl) ExportSource(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Path param 'year' must be numeric", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Path param 'month' must be 1-12", nil)
		return
	}

	src, err := h.reportService.ExportSource(r.Context(), employeeID, year, time.Month(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, src)
}
