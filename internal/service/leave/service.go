package leave

import (
	"context"
	"fmt"

	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
)

// LeaveService fronts the backend's leave surface: the type catalogue and
// authoritative balance figures.
type LeaveService struct {
	gateway leave.Gateway
}

func NewLeaveService(gateway leave.Gateway) *LeaveService {
	return &LeaveService{gateway: gateway}
}

// TypeCodes returns the catalogue as an ID to canonical code map. Catalogue
// entries without a usable code fall back to normalizing the type name.
func (s *LeaveService) TypeCodes(ctx context.Context) (map[string]leave.Code, error) {
	types, err := s.gateway.GetLeaveTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave types: %w", err)
	}

	codes := make(map[string]leave.Code, len(types))
	for _, t := range types {
		code := t.Code
		if !code.Valid() {
			code = NormalizeCode(t.Name)
		}
		if code.Valid() {
			codes[t.ID] = code
		}
	}
	return codes, nil
}

// Balance returns the backend's balance figures for one employee. These are
// authoritative and preferred over locally recomputed totals.
func (s *LeaveService) Balance(ctx context.Context, employeeID string) (leave.Balance, error) {
	balance, err := s.gateway.GetLeaveBalance(ctx, employeeID)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("%w: %v", leave.ErrBalanceUnavailable, err)
	}
	balance.EmployeeID = employeeID
	return balance, nil
}
