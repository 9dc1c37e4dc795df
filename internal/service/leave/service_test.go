package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	types      []leave.Type
	typesErr   error
	balance    leave.Balance
	balanceErr error
}

func (f *fakeGateway) GetLeaveRequests(_ context.Context, _ string) ([]leave.Request, error) {
	return nil, nil
}

func (f *fakeGateway) GetLeaveTypes(_ context.Context) ([]leave.Type, error) {
	if f.typesErr != nil {
		return nil, f.typesErr
	}
	return f.types, nil
}

func (f *fakeGateway) GetLeaveBalance(_ context.Context, _ string) (leave.Balance, error) {
	if f.balanceErr != nil {
		return leave.Balance{}, f.balanceErr
	}
	return f.balance, nil
}

func (f *fakeGateway) GetVacationsInRange(_ context.Context, _, _ time.Time) ([]leave.VacationSpan, error) {
	return nil, nil
}

func TestTypeCodes(t *testing.T) {
	gw := &fakeGateway{
		types: []leave.Type{
			{ID: "t1", Code: leave.CodeSick},
			{ID: "t2", Name: "Annual Leave"},        // no code, normalized from name
			{ID: "t3", Name: "Committee Sessions"},  // unmappable, dropped
		},
	}
	svc := NewLeaveService(gw)

	codes, err := svc.TypeCodes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, leave.CodeSick, codes["t1"])
	assert.Equal(t, leave.CodeAnnual, codes["t2"])
	assert.NotContains(t, codes, "t3")
}

func TestTypeCodes_GatewayFailure(t *testing.T) {
	svc := NewLeaveService(&fakeGateway{typesErr: errors.New("catalogue down")})

	_, err := svc.TypeCodes(context.Background())
	assert.Error(t, err)
}

func TestBalance(t *testing.T) {
	gw := &fakeGateway{balance: leave.Balance{Entitlement: 21, Used: 4, Remaining: 17}}
	svc := NewLeaveService(gw)

	balance, err := svc.Balance(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "e1", balance.EmployeeID)
	assert.Equal(t, 17.0, balance.Remaining)
}

func TestBalance_Unavailable(t *testing.T) {
	svc := NewLeaveService(&fakeGateway{balanceErr: errors.New("endpoint down")})

	_, err := svc.Balance(context.Background(), "e1")
	assert.ErrorIs(t, err, leave.ErrBalanceUnavailable)
}
