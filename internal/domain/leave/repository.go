package leave

import (
	"context"
	"time"
)

// Gateway is the attendance backend's leave surface. Records arrive already
// parsed; the implementation owns wire formats and field-name quirks.
type Gateway interface {
	GetLeaveRequests(ctx context.Context, employeeID string) ([]Request, error)
	GetLeaveTypes(ctx context.Context) ([]Type, error)
	GetLeaveBalance(ctx context.Context, employeeID string) (Balance, error)
	GetVacationsInRange(ctx context.Context, from, to time.Time) ([]VacationSpan, error)
}
