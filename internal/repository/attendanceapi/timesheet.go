package attendanceapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/timesheet"
)

type timesheetGatewayImpl struct {
	client *Client
}

func NewTimesheetGateway(client *Client) timesheet.Gateway {
	return &timesheetGatewayImpl{client: client}
}

type dayPayload struct {
	Day         int     `json:"day"`
	Code        string  `json:"code"`
	Reason      *string `json:"reason"`
	Comment     *string `json:"comment"`
	Entry       *string `json:"entry"`
	Exit        *string `json:"exit"`
	Present     bool    `json:"present"`
	IsHoliday   bool    `json:"is_holiday"`
	WorkMin     *int    `json:"work_min"`
	ExpectedMin *int    `json:"expected_min"`
	DeltaMin    *int    `json:"delta_min"`
}

// GetTimesheetMonth implements timesheet.Gateway.
func (g *timesheetGatewayImpl) GetTimesheetMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]timesheet.Day, error) {
	query := url.Values{}
	query.Set("employee_id", employeeID)
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(int(month)))

	var envelope struct {
		Data []dayPayload `json:"data"`
	}
	if err := g.client.get(ctx, "/timesheet/month", query, &envelope); err != nil {
		return nil, fmt.Errorf("failed to get timesheet month: %w", err)
	}

	days := make([]timesheet.Day, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		days = append(days, timesheet.Day{
			Day:         p.Day,
			Code:        p.Code,
			Reason:      p.Reason,
			Comment:     p.Comment,
			Entry:       p.Entry,
			Exit:        p.Exit,
			Present:     p.Present,
			IsHoliday:   p.IsHoliday,
			WorkMin:     p.WorkMin,
			ExpectedMin: p.ExpectedMin,
			DeltaMin:    p.DeltaMin,
		})
	}
	return days, nil
}

type rangePunchPayload struct {
	Employees []struct {
		ID   string  `json:"id"`
		Name string  `json:"name"`
		PS   *string `json:"ps"`
		Days []struct {
			Date       string  `json:"date"`
			StatusCode *string `json:"status_code"`
			Reason     *string `json:"reason"`
			Comment    *string `json:"comment"`
			Entry      *string `json:"entry"`
			Exit       *string `json:"exit"`
		} `json:"days"`
	} `json:"employees"`
}

// RangePunches implements timesheet.Gateway.
func (g *timesheetGatewayImpl) RangePunches(ctx context.Context, from, to time.Time, filter timesheet.RangeFilter) (timesheet.RangeResult, error) {
	query := url.Values{}
	query.Set("from", from.Format("2006-01-02"))
	query.Set("to", to.Format("2006-01-02"))
	if filter.EmployeeID != nil {
		query.Set("employee_id", *filter.EmployeeID)
	}
	if filter.PS != nil {
		query.Set("ps", *filter.PS)
	}

	var envelope struct {
		Data rangePunchPayload `json:"data"`
	}
	if err := g.client.get(ctx, "/punches/range", query, &envelope); err != nil {
		return timesheet.RangeResult{}, fmt.Errorf("failed to get range punches: %w", err)
	}

	result := timesheet.RangeResult{}
	for _, emp := range envelope.Data.Employees {
		rangeEmp := timesheet.RangeEmployee{
			ID:   emp.ID,
			Name: emp.Name,
			PS:   emp.PS,
		}
		for _, day := range emp.Days {
			date, err := time.Parse("2006-01-02", day.Date)
			if err != nil {
				// a malformed date drops the record, not the employee
				continue
			}
			rangeEmp.Days = append(rangeEmp.Days, timesheet.PunchRecord{
				EmployeeID: emp.ID,
				Date:       date,
				Entry:      day.Entry,
				Exit:       day.Exit,
				StatusCode: day.StatusCode,
				Reason:     day.Reason,
				Comment:    day.Comment,
			})
		}
		result.Employees = append(result.Employees, rangeEmp)
	}
	return result, nil
}

// UpdateAttendance implements timesheet.Gateway.
func (g *timesheetGatewayImpl) UpdateAttendance(ctx context.Context, req timesheet.UpdateRequest) error {
	if err := g.client.post(ctx, "/attendance/update", req, nil); err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}
