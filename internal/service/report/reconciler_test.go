package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/employee"
	"github.com/atlashr/timesheet-backend-go/internal/domain/holiday"
	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
	leaveService "github.com/atlashr/timesheet-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== fakes =====

type fakeTimesheetGateway struct {
	mu         sync.Mutex
	monthCalls int
	months     map[string][]timesheet.Day
	rangeRes   timesheet.RangeResult
	rangeErr   error
}

func (f *fakeTimesheetGateway) GetTimesheetMonth(_ context.Context, employeeID string, _ int, _ time.Month) ([]timesheet.Day, error) {
	f.mu.Lock()
	f.monthCalls++
	f.mu.Unlock()
	return f.months[employeeID], nil
}

func (f *fakeTimesheetGateway) RangePunches(_ context.Context, _, _ time.Time, _ timesheet.RangeFilter) (timesheet.RangeResult, error) {
	if f.rangeErr != nil {
		return timesheet.RangeResult{}, f.rangeErr
	}
	return f.rangeRes, nil
}

func (f *fakeTimesheetGateway) UpdateAttendance(_ context.Context, _ timesheet.UpdateRequest) error {
	return nil
}

type fakeLeaveGateway struct {
	requests    map[string][]leave.Request
	requestErrs map[string]error
	balances    map[string]leave.Balance
	balanceErr  error
	types       []leave.Type
	vacations   []leave.VacationSpan
}

func (f *fakeLeaveGateway) GetLeaveRequests(_ context.Context, employeeID string) ([]leave.Request, error) {
	if err := f.requestErrs[employeeID]; err != nil {
		return nil, err
	}
	return f.requests[employeeID], nil
}

func (f *fakeLeaveGateway) GetLeaveTypes(_ context.Context) ([]leave.Type, error) {
	return f.types, nil
}

func (f *fakeLeaveGateway) GetLeaveBalance(_ context.Context, employeeID string) (leave.Balance, error) {
	if f.balanceErr != nil {
		return leave.Balance{}, f.balanceErr
	}
	return f.balances[employeeID], nil
}

func (f *fakeLeaveGateway) GetVacationsInRange(_ context.Context, _, _ time.Time) ([]leave.VacationSpan, error) {
	return f.vacations, nil
}

type fakeHolidayGateway struct {
	holidays []holiday.Holiday
	err      error
}

func (f *fakeHolidayGateway) GetHolidays(_ context.Context, _, _ time.Time) ([]holiday.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.holidays, nil
}

type fakeCustomHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeCustomHolidayRepo) List(_ context.Context, _, _ time.Time) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeCustomHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (f *fakeCustomHolidayRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeEmployeeGateway struct {
	employees     map[string]employee.Employee
	errs          map[string]error
	onGetEmployee func()
}

func (f *fakeEmployeeGateway) GetEmployee(_ context.Context, employeeID string) (employee.Employee, error) {
	if f.onGetEmployee != nil {
		f.onGetEmployee()
	}
	if err := f.errs[employeeID]; err != nil {
		return employee.Employee{}, err
	}
	emp, ok := f.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeGateway) ListEmployees(_ context.Context) ([]employee.Employee, error) {
	emps := make([]employee.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		emps = append(emps, e)
	}
	return emps, nil
}

// ===== fixture =====

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

type fixture struct {
	timesheets *fakeTimesheetGateway
	leaves     *fakeLeaveGateway
	holidays   *fakeHolidayGateway
	custom     *fakeCustomHolidayRepo
	employees  *fakeEmployeeGateway
	reconciler *Reconciler
}

// newFixture wires two employees over 2024-06-10 (Monday) to 2024-06-14
// (Friday): e1 punches in on the 10th and 11th, holds approved sick leave on
// the 12th, and the 13th is a custom holiday.
func newFixture() *fixture {
	contractStart := date(2024, 1, 1)
	sched := employee.Schedule{StartTime: "08:00", EndTime: "16:00"}

	f := &fixture{
		timesheets: &fakeTimesheetGateway{
			months: map[string][]timesheet.Day{},
			rangeRes: timesheet.RangeResult{
				Employees: []timesheet.RangeEmployee{
					{
						ID:   "e1",
						Name: "Sami Haddad",
						Days: []timesheet.PunchRecord{
							{EmployeeID: "e1", Date: date(2024, 6, 10), Entry: strPtr("08:00"), Exit: strPtr("16:00")},
							{EmployeeID: "e1", Date: date(2024, 6, 11), Entry: strPtr("08:45"), Exit: strPtr("16:00")},
						},
					},
				},
			},
		},
		leaves: &fakeLeaveGateway{
			requests: map[string][]leave.Request{
				"e1": {
					{
						EmployeeID: "e1",
						Status:     "approved",
						StartDate:  date(2024, 6, 12),
						EndDate:    date(2024, 6, 12),
						TypeCode:   leave.CodeSick,
					},
				},
			},
			balances: map[string]leave.Balance{
				"e1": {Entitlement: 21, Used: 4, Remaining: 17},
			},
		},
		holidays: &fakeHolidayGateway{},
		custom: &fakeCustomHolidayRepo{
			holidays: []holiday.Holiday{
				{ID: "h1", Date: date(2024, 6, 13)},
			},
		},
		employees: &fakeEmployeeGateway{
			employees: map[string]employee.Employee{
				"e1": {ID: "e1", Name: "Sami Haddad", ContractStart: &contractStart, Schedule: sched},
				"e2": {ID: "e2", Name: "Lina Aziz", ContractStart: &contractStart, Schedule: sched},
			},
		},
	}

	f.reconciler = NewReconciler(
		f.timesheets,
		f.leaves,
		f.holidays,
		f.custom,
		f.employees,
		leaveService.NewLeaveService(f.leaves),
		10,
		120,
	)
	f.reconciler.now = func() time.Time { return date(2024, 6, 20) }
	return f
}

// ===== tests =====

func TestReconcile_ResolvesTheWeek(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.reconciler.Reconcile(ctx, []string{"e1"}, date(2024, 6, 10), date(2024, 6, 14))
	require.NoError(t, err)

	days := result.Days["e1"]
	require.Len(t, days, 5)

	assert.Equal(t, "P", days["2024-06-10"].CenterCode)
	require.NotNil(t, days["2024-06-10"].DeltaMin)
	assert.Equal(t, 0, *days["2024-06-10"].DeltaMin)

	assert.Equal(t, "P", days["2024-06-11"].CenterCode)
	assert.True(t, days["2024-06-11"].IsLate)

	assert.Equal(t, "SL", days["2024-06-12"].CenterCode)

	assert.True(t, days["2024-06-13"].IsHoliday, "custom holidays join the set")
	assert.Equal(t, "", days["2024-06-13"].CenterCode)

	assert.True(t, days["2024-06-14"].IsFriday)
	assert.Equal(t, "", days["2024-06-14"].CenterCode)

	assert.Equal(t, "Sami Haddad", result.Names["e1"])
	assert.Empty(t, result.Errors)
}

func TestReconcile_Idempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.reconciler.Reconcile(ctx, []string{"e1", "e2"}, date(2024, 6, 10), date(2024, 6, 14))
	require.NoError(t, err)
	second, err := f.reconciler.Reconcile(ctx, []string{"e1", "e2"}, date(2024, 6, 10), date(2024, 6, 14))
	require.NoError(t, err)

	assert.Equal(t, first.Days, second.Days)
	assert.Equal(t, first.Names, second.Names)
}

func TestReconcile_IsolatesEmployeeFailures(t *testing.T) {
	f := newFixture()
	f.employees.errs = map[string]error{"e2": errors.New("backend timeout")}
	ctx := context.Background()

	result, err := f.reconciler.Reconcile(ctx, []string{"e1", "e2"}, date(2024, 6, 10), date(2024, 6, 14))
	require.NoError(t, err, "one employee's failure never aborts the batch")

	assert.Len(t, result.Days["e1"], 5)
	assert.Empty(t, result.Days["e2"])
	assert.ErrorContains(t, result.Errors["e2"], "backend timeout")
}

func TestReconcile_BatchingCoversAllEmployees(t *testing.T) {
	f := newFixture()
	contractStart := date(2024, 1, 1)
	ids := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("emp-%02d", i)
		ids = append(ids, id)
		f.employees.employees[id] = employee.Employee{
			ID: id, Name: id, ContractStart: &contractStart,
			Schedule: employee.Schedule{StartTime: "08:00", EndTime: "16:00"},
		}
	}
	ctx := context.Background()

	result, err := f.reconciler.Reconcile(ctx, ids, date(2024, 6, 10), date(2024, 6, 14))
	require.NoError(t, err)

	for _, id := range ids {
		assert.Len(t, result.Days[id], 5, "employee %s", id)
	}
}

func TestReconcile_SupersededByNewerRequest(t *testing.T) {
	f := newFixture()
	// a newer request lands while the first one's fetches are in flight
	f.employees.onGetEmployee = func() {
		f.reconciler.mu.Lock()
		f.reconciler.latestKey = "someone-else|2024-07-01|2024-07-31"
		f.reconciler.mu.Unlock()
	}
	ctx := context.Background()

	_, err := f.reconciler.Reconcile(ctx, []string{"e1"}, date(2024, 6, 10), date(2024, 6, 14))
	assert.ErrorIs(t, err, timesheet.ErrSuperseded)
}

func TestReconcile_InvalidPeriod(t *testing.T) {
	f := newFixture()
	_, err := f.reconciler.Reconcile(context.Background(), []string{"e1"}, date(2024, 6, 14), date(2024, 6, 10))
	assert.Error(t, err)
}

func TestReconcile_RangePunchOutageDegradesToMonthlyRecords(t *testing.T) {
	f := newFixture()
	f.timesheets.rangeErr = errors.New("range endpoint down")
	f.timesheets.months["e1"] = []timesheet.Day{
		{Day: 10, Present: true, Entry: strPtr("08:00"), Exit: strPtr("16:00")},
	}
	ctx := context.Background()

	result, err := f.reconciler.Reconcile(ctx, []string{"e1"}, date(2024, 6, 10), date(2024, 6, 14))
	require.NoError(t, err)

	assert.Equal(t, "P", result.Days["e1"]["2024-06-10"].CenterCode)
}

func TestSummaries_AttachesBalances(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	result, err := f.reconciler.Reconcile(ctx, []string{"e1", "e2"}, date(2024, 6, 10), date(2024, 6, 14))
	require.NoError(t, err)

	summaries, err := f.reconciler.Summaries(ctx, result)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// sorted by employee ID
	assert.Equal(t, "e1", summaries[0].EmployeeID)
	assert.Equal(t, "e2", summaries[1].EmployeeID)

	require.NotNil(t, summaries[0].Balance)
	assert.Equal(t, 17.0, summaries[0].Balance.Remaining)
	assert.Equal(t, 2, summaries[0].PresenceDays)
	assert.Equal(t, 1, summaries[0].LeaveTallies[leave.CodeSick])
}

func TestSummaries_BalanceOutageIsNonFatal(t *testing.T) {
	f := newFixture()
	f.leaves.balanceErr = errors.New("balance endpoint down")
	ctx := context.Background()

	result, err := f.reconciler.Reconcile(ctx, []string{"e1"}, date(2024, 6, 10), date(2024, 6, 14))
	require.NoError(t, err)

	summaries, err := f.reconciler.Summaries(ctx, result)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].Balance)
}

func TestExportSource_Memoized(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.reconciler.ExportSource(ctx, "e1", 2024, time.June)
	require.NoError(t, err)
	assert.Equal(t, "e1", first.EmployeeID)
	assert.Equal(t, 2024, first.Year)
	assert.Equal(t, 6, first.Month)
	assert.Len(t, first.Days, 30)

	f.timesheets.mu.Lock()
	callsAfterFirst := f.timesheets.monthCalls
	f.timesheets.mu.Unlock()

	second, err := f.reconciler.ExportSource(ctx, "e1", 2024, time.June)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	f.timesheets.mu.Lock()
	callsAfterSecond := f.timesheets.monthCalls
	f.timesheets.mu.Unlock()
	assert.Equal(t, callsAfterFirst, callsAfterSecond, "a memoized export refetches nothing")
}

func TestExportSource_DoesNotDisturbPendingReconciliations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// a grid reconciliation, then an export for a different period
	_, err := f.reconciler.Reconcile(ctx, []string{"e1"}, date(2024, 6, 10), date(2024, 6, 14))
	require.NoError(t, err)
	_, err = f.reconciler.ExportSource(ctx, "e1", 2024, time.May)
	require.NoError(t, err)

	// re-running the grid request still succeeds, not superseded
	_, err = f.reconciler.Reconcile(ctx, []string{"e1"}, date(2024, 6, 10), date(2024, 6, 14))
	assert.NoError(t, err)
}

func TestExportSource_PropagatesEmployeeFailure(t *testing.T) {
	f := newFixture()
	f.employees.errs = map[string]error{"e1": errors.New("backend timeout")}
	ctx := context.Background()

	_, err := f.reconciler.ExportSource(ctx, "e1", 2024, time.June)
	assert.ErrorContains(t, err, "backend timeout")
}
