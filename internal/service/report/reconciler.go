package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/employee"
	"github.com/atlashr/timesheet-backend-go/internal/domain/holiday"
	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
	"github.com/atlashr/timesheet-backend-go/internal/domain/report"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
	"github.com/atlashr/timesheet-backend-go/internal/pkg/timeclock"
	leaveService "github.com/atlashr/timesheet-backend-go/internal/service/leave"
	timesheetService "github.com/atlashr/timesheet-backend-go/internal/service/timesheet"
	"golang.org/x/sync/errgroup"
)

// Reconciler merges the independently fetched data sources (punches, monthly
// records, leave overlays, holiday calendars) into the per-employee-per-day
// classification map. It holds no hidden mutable counters: reconciling the
// same inputs twice yields identical maps.
type Reconciler struct {
	timesheets     timesheet.Gateway
	leaves         leave.Gateway
	holidays       holiday.Gateway
	customHolidays holiday.CustomRepository
	employees      employee.Gateway
	leaveSvc       *leaveService.LeaveService
	batchSize      int
	offsetMinutes  int
	now            func() time.Time

	mu        sync.Mutex
	latestKey string
	exports   map[string]report.ExportSource
}

func NewReconciler(
	timesheets timesheet.Gateway,
	leaves leave.Gateway,
	holidays holiday.Gateway,
	customHolidays holiday.CustomRepository,
	employees employee.Gateway,
	leaveSvc *leaveService.LeaveService,
	batchSize int,
	offsetMinutes int,
) *Reconciler {
	if batchSize < 1 {
		batchSize = 10
	}
	return &Reconciler{
		timesheets:     timesheets,
		leaves:         leaves,
		holidays:       holidays,
		customHolidays: customHolidays,
		employees:      employees,
		leaveSvc:       leaveSvc,
		batchSize:      batchSize,
		offsetMinutes:  offsetMinutes,
		now:            time.Now,
		exports:        make(map[string]report.ExportSource),
	}
}

// Reconcile implements report.Service. A reconciliation superseded by a newer
// request (the period or employee set changed while fetches were in flight)
// is discarded instead of overwriting fresher state: callers get
// timesheet.ErrSuperseded and keep whatever they already had.
func (r *Reconciler) Reconcile(ctx context.Context, employeeIDs []string, from, to time.Time) (report.PeriodResult, error) {
	key := requestKey(employeeIDs, from, to)
	r.mu.Lock()
	r.latestKey = key
	r.mu.Unlock()

	result, err := r.reconcile(ctx, employeeIDs, from, to)
	if err != nil {
		return report.PeriodResult{}, err
	}

	r.mu.Lock()
	latest := r.latestKey
	r.mu.Unlock()
	if latest != key {
		return report.PeriodResult{}, timesheet.ErrSuperseded
	}
	return result, nil
}

func (r *Reconciler) reconcile(ctx context.Context, employeeIDs []string, from, to time.Time) (report.PeriodResult, error) {
	from = dateOnly(from)
	to = dateOnly(to)
	if to.Before(from) {
		return report.PeriodResult{}, fmt.Errorf("invalid period: %s after %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	holidaySet := r.buildHolidaySet(ctx, from, to)

	typeCodes, err := r.leaveSvc.TypeCodes(ctx)
	if err != nil {
		slog.Warn("leave type catalogue unavailable", "error", err)
		typeCodes = map[string]leave.Code{}
	}

	vacations, err := r.leaves.GetVacationsInRange(ctx, from, to)
	if err != nil {
		slog.Warn("vacation spans unavailable", "error", err)
		vacations = nil
	}
	vacsByEmployee := make(map[string][]leave.VacationSpan)
	for _, v := range vacations {
		vacsByEmployee[v.EmployeeID] = append(vacsByEmployee[v.EmployeeID], v)
	}

	punches, punchNames := r.indexRangePunches(ctx, from, to)

	result := report.PeriodResult{
		From:   from,
		To:     to,
		Days:   make(map[string]map[string]timesheet.DayClassification),
		Names:  make(map[string]string),
		Errors: make(map[string]error),
	}
	now := r.now()

	// Batched fan-out: the whole batch is awaited before the next starts,
	// which caps in-flight backend requests without serializing the set.
	for start := 0; start < len(employeeIDs); start += r.batchSize {
		end := min(start+r.batchSize, len(employeeIDs))
		g, gctx := errgroup.WithContext(ctx)

		for _, employeeID := range employeeIDs[start:end] {
			employeeID := employeeID
			g.Go(func() error {
				days, name, err := r.buildEmployee(gctx, employeeID, from, to,
					punches[employeeID], vacsByEmployee[employeeID], typeCodes, holidaySet, now)

				r.mu.Lock()
				defer r.mu.Unlock()
				if err != nil {
					// one employee's failure never aborts the batch
					slog.Warn("employee reconciliation failed",
						"employee_id", employeeID, "error", err)
					result.Errors[employeeID] = err
					result.Days[employeeID] = map[string]timesheet.DayClassification{}
					return nil
				}
				result.Days[employeeID] = days
				if name == "" {
					name = punchNames[employeeID]
				}
				result.Names[employeeID] = name
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return report.PeriodResult{}, err
		}
	}

	return result, nil
}

func (r *Reconciler) buildEmployee(
	ctx context.Context,
	employeeID string,
	from, to time.Time,
	punches map[string]*timesheet.PunchRecord,
	vacations []leave.VacationSpan,
	typeCodes map[string]leave.Code,
	holidaySet holiday.Set,
	now time.Time,
) (map[string]timesheet.DayClassification, string, error) {
	emp, err := r.employees.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.ContractStart == nil {
		slog.Warn("employee has no contract start date, pre-employment guard disabled",
			"employee_id", employeeID)
	}
	if !emp.Schedule.Complete() {
		slog.Warn("employee schedule is incomplete, expected minutes will be unknown",
			"employee_id", employeeID)
	}

	requests, err := r.leaves.GetLeaveRequests(ctx, employeeID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get leave requests: %w", err)
	}
	overlay := leaveService.BuildOverlay(requests, vacations, typeCodes, from, to)

	monthDays := make(map[string]map[int]*timesheet.Day)
	for m := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC); !m.After(to); m = m.AddDate(0, 1, 0) {
		days, err := r.timesheets.GetTimesheetMonth(ctx, employeeID, m.Year(), m.Month())
		if err != nil {
			return nil, "", fmt.Errorf("failed to get timesheet month %s: %w", m.Format("2006-01"), err)
		}
		byDay := make(map[int]*timesheet.Day, len(days))
		for i := range days {
			byDay[days[i].Day] = &days[i]
		}
		monthDays[m.Format("2006-01")] = byDay
	}

	classified := make(map[string]timesheet.DayClassification)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		iso := d.Format("2006-01-02")
		input := timesheetService.DayInput{
			Date:          d,
			Punch:         punches[iso],
			MonthDay:      monthDays[d.Format("2006-01")][d.Day()],
			LeaveCode:     overlay.CodeFor(employeeID, iso),
			IsHoliday:     holidaySet.ContainsISO(iso),
			ContractStart: emp.ContractStart,
			Schedule:      emp.Schedule,
			OffsetMinutes: r.offsetMinutes,
		}
		cls := timesheetService.Classify(input)
		timesheetService.ComputeDayMetrics(&cls, emp.Schedule, now)
		classified[iso] = cls
	}

	return classified, emp.Name, nil
}

// buildHolidaySet unions the backend public-holiday calendar with locally
// configured custom holidays. Either source failing degrades to the other
// with a warning; classification proceeds regardless.
func (r *Reconciler) buildHolidaySet(ctx context.Context, from, to time.Time) holiday.Set {
	set := make(holiday.Set)

	public, err := r.holidays.GetHolidays(ctx, from, to)
	if err != nil {
		slog.Warn("public holiday calendar unavailable", "error", err)
	}
	for _, h := range public {
		set.Add(h.Date)
	}

	if r.customHolidays != nil {
		custom, err := r.customHolidays.List(ctx, from, to)
		if err != nil {
			slog.Warn("custom holidays unavailable", "error", err)
		}
		for _, h := range custom {
			set.Add(h.Date)
		}
	}

	return set
}

func (r *Reconciler) indexRangePunches(ctx context.Context, from, to time.Time) (map[string]map[string]*timesheet.PunchRecord, map[string]string) {
	punches := make(map[string]map[string]*timesheet.PunchRecord)
	names := make(map[string]string)

	rangeRes, err := r.timesheets.RangePunches(ctx, from, to, timesheet.RangeFilter{})
	if err != nil {
		slog.Warn("range punches unavailable, falling back to monthly records", "error", err)
		return punches, names
	}

	for _, emp := range rangeRes.Employees {
		names[emp.ID] = emp.Name
		byDate := make(map[string]*timesheet.PunchRecord, len(emp.Days))
		for i := range emp.Days {
			byDate[emp.Days[i].Date.Format("2006-01-02")] = &emp.Days[i]
		}
		punches[emp.ID] = byDate
	}

	return punches, names
}

// Summaries implements report.Service.
func (r *Reconciler) Summaries(ctx context.Context, result report.PeriodResult) ([]report.EmployeeSummary, error) {
	ids := make([]string, 0, len(result.Days))
	for id := range result.Days {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	summaries := make([]report.EmployeeSummary, 0, len(ids))
	for _, id := range ids {
		summary := Summarize(id, result.Names[id], result.Days[id])
		if balance, err := r.leaveSvc.Balance(ctx, id); err == nil {
			summary.Balance = &balance
		} else {
			slog.Warn("leave balance unavailable", "employee_id", id, "error", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ExportSource implements report.Service. Memoized per (employee, year,
// month); exported periods are finite, so the cache never evicts.
func (r *Reconciler) ExportSource(ctx context.Context, employeeID string, year int, month time.Month) (report.ExportSource, error) {
	key := fmt.Sprintf("%s|%04d-%02d", employeeID, year, int(month))

	r.mu.Lock()
	if cached, ok := r.exports[key]; ok {
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	result, err := r.reconcile(ctx, []string{employeeID}, from, to)
	if err != nil {
		return report.ExportSource{}, err
	}
	if fetchErr, ok := result.Errors[employeeID]; ok {
		return report.ExportSource{}, fetchErr
	}

	days := result.Days[employeeID]
	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	responses := make([]timesheet.DayResponse, 0, len(dates))
	for _, date := range dates {
		responses = append(responses, ToDayResponse(date, days[date]))
	}

	summary := Summarize(employeeID, result.Names[employeeID], days)
	if balance, err := r.leaveSvc.Balance(ctx, employeeID); err == nil {
		summary.Balance = &balance
	}

	src := report.ExportSource{
		EmployeeID: employeeID,
		Name:       result.Names[employeeID],
		Year:       year,
		Month:      int(month),
		Days:       responses,
		Summary:    summary,
	}

	r.mu.Lock()
	r.exports[key] = src
	r.mu.Unlock()

	return src, nil
}

// ToDayResponse renders one classified day for JSON consumers, including the
// signed rounded-hour display for the delta.
func ToDayResponse(isoDate string, cls timesheet.DayClassification) timesheet.DayResponse {
	resp := timesheet.DayResponse{
		Date:              isoDate,
		CenterCode:        cls.CenterCode,
		LeaveCode:         string(cls.LeaveCode),
		IsHoliday:         cls.IsHoliday,
		IsFriday:          cls.IsFriday,
		HasPresence:       cls.HasPresence,
		IsAbsentUnexcused: cls.IsAbsentUnexcused,
		Entry:             cls.Entry,
		Exit:              cls.Exit,
		WorkMin:           cls.WorkMin,
		ExpectedMin:       cls.ExpectedMin,
		DeltaMin:          cls.DeltaMin,
		IsLate:            cls.IsLate,
	}
	if cls.DeltaMin != nil {
		resp.DeltaDisplay = timeclock.RoundedHoursWithSign(*cls.DeltaMin)
	}
	return resp
}

func requestKey(employeeIDs []string, from, to time.Time) string {
	ids := make([]string, len(employeeIDs))
	copy(ids, employeeIDs)
	sort.Strings(ids)
	return strings.Join(ids, ",") + "|" + from.Format("2006-01-02") + "|" + to.Format("2006-01-02")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
