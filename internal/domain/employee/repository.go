package employee

import "context"

// Gateway reads employee master records from the attendance backend.
type Gateway interface {
	GetEmployee(ctx context.Context, employeeID string) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
}
