package calendar

import (
	"context"
	"errors"
	"time"

	domainbooking "chaletbay/internal/domain/booking"
	"chaletbay/internal/domain/pricing"
	"chaletbay/internal/domain/shared/money"
)

var ErrInvalidMonth = errors.New("calendar: month must be between 1 and 12")

// Day is one cell of the month view. Free days carry the reference nightly
// rate for a couple so the desk can quote at a glance; occupied days point at
// the booking holding them.
type Day struct {
	Date          time.Time
	Occupied      bool
	BookingID     domainbooking.BookingID
	Kind          domainbooking.Kind
	CheckInDay    bool
	CheckOutEve   bool
	ReferenceRate money.Amount
}

type MonthView struct {
	Year  int
	Month time.Month
	Days  []Day
}

type Service struct {
	Bookings domainbooking.Repository
}

func (s *Service) Month(ctx context.Context, year int, month time.Month) (MonthView, error) {
	if month < time.January || month > time.December {
		return MonthView{}, ErrInvalidMonth
	}
	bookings, err := s.Bookings.List(ctx)
	if err != nil {
		return MonthView{}, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	view := MonthView{Year: year, Month: month}
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		day := Day{Date: d}
		for _, b := range bookings {
			if !b.Occupies(d) {
				continue
			}
			day.Occupied = true
			day.BookingID = b.ID
			day.Kind = b.Kind
			day.CheckInDay = d.Equal(b.StartDate)
			day.CheckOutEve = b.Kind == domainbooking.KindOvernight && d.Equal(b.EndDate.AddDate(0, 0, -1))
			break
		}
		if !day.Occupied {
			day.ReferenceRate = pricing.ReferenceNightlyRate(d)
		}
		view.Days = append(view.Days, day)
	}
	return view, nil
}
