package holiday

import (
	"context"
	"time"
)

// Gateway reads the backend public-holiday calendar.
type Gateway interface {
	GetHolidays(ctx context.Context, from, to time.Time) ([]Holiday, error)
}

// CustomRepository stores locally configured custom holidays. These are
// unioned with the backend calendar when the holiday set is built.
type CustomRepository interface {
	List(ctx context.Context, from, to time.Time) ([]Holiday, error)
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
