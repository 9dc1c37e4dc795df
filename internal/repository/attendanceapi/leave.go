package attendanceapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
)

type leaveGatewayImpl struct {
	client *Client
}

func NewLeaveGateway(client *Client) leave.Gateway {
	return &leaveGatewayImpl{client: client}
}

type leaveRequestPayload struct {
	Status        string  `json:"status"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	LeaveTypeCode *string `json:"leave_type_code"`
	LeaveTypeID   *string `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name"`
}

// GetLeaveRequests implements leave.Gateway.
func (g *leaveGatewayImpl) GetLeaveRequests(ctx context.Context, employeeID string) ([]leave.Request, error) {
	query := url.Values{}
	query.Set("employee_id", employeeID)

	var envelope struct {
		Data []leaveRequestPayload `json:"data"`
	}
	if err := g.client.get(ctx, "/leave/requests", query, &envelope); err != nil {
		return nil, fmt.Errorf("failed to get leave requests: %w", err)
	}

	requests := make([]leave.Request, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		start, err := time.Parse("2006-01-02", p.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse("2006-01-02", p.EndDate)
		if err != nil {
			continue
		}
		req := leave.Request{
			EmployeeID: employeeID,
			Status:     p.Status,
			StartDate:  start,
			EndDate:    end,
			TypeID:     p.LeaveTypeID,
			TypeName:   p.LeaveTypeName,
		}
		if p.LeaveTypeCode != nil {
			if code := leave.Code(strings.ToUpper(strings.TrimSpace(*p.LeaveTypeCode))); code.Valid() {
				req.TypeCode = code
			}
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// GetLeaveTypes implements leave.Gateway.
func (g *leaveGatewayImpl) GetLeaveTypes(ctx context.Context) ([]leave.Type, error) {
	var envelope struct {
		Data []struct {
			ID   string `json:"id"`
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := g.client.get(ctx, "/leave/types", nil, &envelope); err != nil {
		return nil, fmt.Errorf("failed to get leave types: %w", err)
	}

	types := make([]leave.Type, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		t := leave.Type{ID: p.ID, Name: p.Name}
		if code := leave.Code(strings.ToUpper(strings.TrimSpace(p.Code))); code.Valid() {
			t.Code = code
		}
		types = append(types, t)
	}
	return types, nil
}

// GetLeaveBalance implements leave.Gateway.
func (g *leaveGatewayImpl) GetLeaveBalance(ctx context.Context, employeeID string) (leave.Balance, error) {
	query := url.Values{}
	query.Set("employee_id", employeeID)

	var envelope struct {
		Data struct {
			Entitlement float64 `json:"entitlement"`
			Used        float64 `json:"used"`
			Remaining   float64 `json:"remaining"`
		} `json:"data"`
	}
	if err := g.client.get(ctx, "/leave/balance", query, &envelope); err != nil {
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return leave.Balance{
		EmployeeID:  employeeID,
		Entitlement: envelope.Data.Entitlement,
		Used:        envelope.Data.Used,
		Remaining:   envelope.Data.Remaining,
	}, nil
}

// GetVacationsInRange implements leave.Gateway.
func (g *leaveGatewayImpl) GetVacationsInRange(ctx context.Context, from, to time.Time) ([]leave.VacationSpan, error) {
	query := url.Values{}
	query.Set("from", from.Format("2006-01-02"))
	query.Set("to", to.Format("2006-01-02"))

	var envelope struct {
		Data []struct {
			EmployeeID string `json:"employee_id"`
			StartDate  string `json:"start_date"`
			EndDate    string `json:"end_date"`
			State      string `json:"state"`
			Type       string `json:"type"`
		} `json:"data"`
	}
	if err := g.client.get(ctx, "/vacations", query, &envelope); err != nil {
		return nil, fmt.Errorf("failed to get vacations in range: %w", err)
	}

	spans := make([]leave.VacationSpan, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		start, err := time.Parse("2006-01-02", p.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse("2006-01-02", p.EndDate)
		if err != nil {
			continue
		}
		spans = append(spans, leave.VacationSpan{
			EmployeeID: p.EmployeeID,
			StartDate:  start,
			EndDate:    end,
			State:      p.State,
			Type:       p.Type,
		})
	}
	return spans, nil
}
