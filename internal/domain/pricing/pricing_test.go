package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaletbay/internal/domain/shared/money"
)

var (
	wednesday = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
)

func TestNightlyRateWeekdayTiers(t *testing.T) {
	cases := []struct {
		adults int
		want   money.Amount
	}{
		{1, 380000},
		{2, 380000},
		{3, 430000},
		{4, 500000},
		{5, 570000},
		{6, 640000},
	}
	for _, tc := range cases {
		got, err := NightlyRate(tc.adults, 0, wednesday, false)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "adults=%d", tc.adults)
	}
}

func TestNightlyRateChildrenAreFlat(t *testing.T) {
	got, err := NightlyRate(4, 1, wednesday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(540000), got)

	got, err = NightlyRate(4, 3, wednesday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(500000+3*40000), got)
}

func TestNightlyRateSaturdayUsesWeekendTier(t *testing.T) {
	got, err := NightlyRate(2, 0, saturday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(450000), got)

	got, err = NightlyRate(4, 0, saturday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(590000), got)
}

func TestNightlyRateSundayKeepsWeekdayBaseTier(t *testing.T) {
	// A plain Sunday does not promote the base tier; only the extra-adult
	// surcharge treats Sunday as a weekend day.
	got, err := NightlyRate(2, 0, sunday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(380000), got)

	got, err = NightlyRate(8, 0, sunday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(640000+2*70000), got)
}

func TestNightlyRateHolidayPromotesBaseTier(t *testing.T) {
	got, err := NightlyRate(3, 0, wednesday, true)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(520000), got)
}

func TestNightlyRateExtraAdultsWeekday(t *testing.T) {
	got, err := NightlyRate(8, 0, wednesday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(640000+2*56000), got)
}

func TestNightlyRateRequiresAnAdult(t *testing.T) {
	_, err := NightlyRate(0, 2, wednesday, false)
	assert.ErrorIs(t, err, ErrInvalidOccupancy)
}

func TestPriceOvernightSumsPerNight(t *testing.T) {
	// Thursday, Friday, Saturday nights; checkout Sunday is free.
	start := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	var want money.Amount
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		night, err := NightlyRate(4, 1, d, false)
		require.NoError(t, err)
		want = want.Add(night)
	}

	got, err := PriceOvernight(4, 1, start, end, false)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, money.Amount(540000+540000+630000), got)
}

func TestPriceOvernightEmptyRangeIsZero(t *testing.T) {
	got, err := PriceOvernight(2, 0, wednesday, wednesday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(0), got)
}

func TestPriceDayUseRates(t *testing.T) {
	got, err := PriceDayUse(2, 0, wednesday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(280000), got)

	got, err = PriceDayUse(7, 0, sunday, false)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(470000), got)

	got, err = PriceDayUse(2, 2, wednesday, true)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(400000+2*40000), got)
}

func TestReferenceNightlyRate(t *testing.T) {
	assert.Equal(t, money.Amount(380000), ReferenceNightlyRate(wednesday))
	assert.Equal(t, money.Amount(450000), ReferenceNightlyRate(saturday))
	assert.Equal(t, money.Amount(380000), ReferenceNightlyRate(sunday))
}
