package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/holiday"
	"github.com/atlashr/timesheet-backend-go/internal/pkg/validator"
)

// HolidayService manages locally configured custom holidays. The public
// calendar stays backend-owned; these entries are unioned on top of it when
// the reconciler builds its holiday set.
type HolidayService struct {
	custom holiday.CustomRepository
}

func NewHolidayService(custom holiday.CustomRepository) *HolidayService {
	return &HolidayService{custom: custom}
}

func (s *HolidayService) List(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	holidays, err := s.custom.List(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom holidays: %w", err)
	}
	return holidays, nil
}

func (s *HolidayService) Create(ctx context.Context, dateStr string, name *string) (holiday.Holiday, error) {
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return holiday.Holiday{}, validator.ValidationErrors{
			{Field: "date", Message: "date must be YYYY-MM-DD"},
		}
	}

	created, err := s.custom.Create(ctx, holiday.Holiday{Date: date, Name: name})
	if err != nil {
		if err == holiday.ErrHolidayExists {
			return holiday.Holiday{}, err
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create custom holiday: %w", err)
	}
	return created, nil
}

func (s *HolidayService) Delete(ctx context.Context, id string) error {
	if err := s.custom.Delete(ctx, id); err != nil {
		if err == holiday.ErrHolidayNotFound {
			return err
		}
		return fmt.Errorf("failed to delete custom holiday: %w", err)
	}
	return nil
}
