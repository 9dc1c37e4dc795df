package attendanceapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/atlashr/timesheet-backend-go/internal/domain/holiday"
)

type holidayGatewayImpl struct {
	client *Client
}

func NewHolidayGateway(client *Client) holiday.Gateway {
	return &holidayGatewayImpl{client: client}
}

// GetHolidays implements holiday.Gateway.
func (g *holidayGatewayImpl) GetHolidays(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	query := url.Values{}
	query.Set("start_date", from.Format("2006-01-02"))
	query.Set("end_date", to.Format("2006-01-02"))

	var envelope struct {
		Data []struct {
			Date string  `json:"date"`
			Name *string `json:"name"`
		} `json:"data"`
	}
	if err := g.client.get(ctx, "/holidays", query, &envelope); err != nil {
		return nil, fmt.Errorf("failed to get holidays: %w", err)
	}

	holidays := make([]holiday.Holiday, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		date, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			continue
		}
		holidays = append(holidays, holiday.Holiday{Date: date, Name: p.Name})
	}
	return holidays, nil
}
