package attendanceapi

import (
	"context"
	"fmt"

	"github.com/atlashr/timesheet-backend-go/internal/domain/employee"
)

type employeeGatewayImpl struct {
	client *Client
}

func NewEmployeeGateway(client *Client) employee.Gateway {
	return &employeeGatewayImpl{client: client}
}

// GetEmployee implements employee.Gateway. The backend's master records are
// loosely typed; adaptEmployee absorbs the field-name variants.
func (g *employeeGatewayImpl) GetEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := g.client.get(ctx, "/employees/"+employeeID, nil, &envelope); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if len(envelope.Data) == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	emp := adaptEmployee(envelope.Data)
	if emp.ID == "" {
		emp.ID = employeeID
	}
	return emp, nil
}

// ListEmployees implements employee.Gateway.
func (g *employeeGatewayImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := g.client.get(ctx, "/employees", nil, &envelope); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(envelope.Data))
	for _, row := range envelope.Data {
		emp := adaptEmployee(row)
		if emp.ID == "" {
			continue
		}
		employees = append(employees, emp)
	}
	return employees, nil
}
