package postgresql

import (
	"context"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/holiday"
	"github.com/atlashr/timesheet-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type customHolidayRepositoryImpl struct {
	db *database.DB
}

func NewCustomHolidayRepository(db *database.DB) holiday.CustomRepository {
	return &customHolidayRepositoryImpl{db: db}
}

// List implements holiday.CustomRepository.
func (r *customHolidayRepositoryImpl) List(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	query := `
		SELECT id, date, name, created_at
		FROM custom_holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Create implements holiday.CustomRepository.
func (r *customHolidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	query := `
		INSERT INTO custom_holidays (id, date, name, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (date) DO NOTHING
		RETURNING id, date, name, created_at
	`
	var created holiday.Holiday
	err := r.db.QueryRow(ctx, query, h.ID, h.Date, h.Name).Scan(
		&created.ID, &created.Date, &created.Name, &created.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, err
	}
	return created, nil
}

// Delete implements holiday.CustomRepository.
func (r *customHolidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM custom_holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
