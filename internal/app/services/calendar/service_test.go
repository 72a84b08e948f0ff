package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "chaletbay/internal/domain/booking"
	"chaletbay/internal/domain/shared/money"
)

type stubRepo struct {
	items []*domainbooking.Booking
}

func (s stubRepo) ByID(ctx context.Context, id domainbooking.BookingID) (*domainbooking.Booking, error) {
	return nil, domainbooking.ErrBookingNotFound
}

func (s stubRepo) List(ctx context.Context) ([]*domainbooking.Booking, error) {
	return s.items, nil
}

func (s stubRepo) Save(ctx context.Context, b *domainbooking.Booking) error { return nil }

func (s stubRepo) Delete(ctx context.Context, id domainbooking.BookingID) error { return nil }

func TestMonthMarksOccupiedDays(t *testing.T) {
	start := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	b, err := domainbooking.New(domainbooking.CreateParams{
		ID:        "b1",
		Kind:      domainbooking.KindOvernight,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
		Adults:    2,
		CreatedAt: start,
	})
	require.NoError(t, err)

	svc := &Service{Bookings: stubRepo{items: []*domainbooking.Booking{b}}}
	view, err := svc.Month(context.Background(), 2025, time.June)
	require.NoError(t, err)
	require.Len(t, view.Days, 30)

	day12 := view.Days[11]
	assert.True(t, day12.Occupied)
	assert.Equal(t, domainbooking.BookingID("b1"), day12.BookingID)
	assert.True(t, day12.CheckInDay)

	day13 := view.Days[12]
	assert.True(t, day13.Occupied)
	assert.True(t, day13.CheckOutEve)

	day14 := view.Days[13]
	assert.False(t, day14.Occupied, "checkout day stays bookable")
}

func TestMonthFreeDaysCarryReferenceRate(t *testing.T) {
	svc := &Service{Bookings: stubRepo{}}
	view, err := svc.Month(context.Background(), 2025, time.June)
	require.NoError(t, err)

	// June 7 2025 is a Saturday, June 9 a Monday.
	assert.Equal(t, money.Amount(450000), view.Days[6].ReferenceRate)
	assert.Equal(t, money.Amount(380000), view.Days[8].ReferenceRate)
}

func TestMonthRejectsInvalidMonth(t *testing.T) {
	svc := &Service{Bookings: stubRepo{}}
	_, err := svc.Month(context.Background(), 2025, time.Month(0))
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
