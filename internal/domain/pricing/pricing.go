package pricing

import (
	"errors"
	"time"

	"chaletbay/internal/domain/shared/daterange"
	"chaletbay/internal/domain/shared/money"
)

var ErrInvalidOccupancy = errors.New("pricing: at least one adult is required")

// Rate card for the chalet, in COP. Base tiers are keyed by the number of
// adults up to baseTierCap; everyone above the cap pays the per-head extra
// rate instead of moving the tier.
const (
	baseTierCap = 6

	extraAdultWeekendRate money.Amount = 70000
	extraAdultWeekdayRate money.Amount = 56000
	childRate             money.Amount = 40000

	coupleWeekdayRate money.Amount = 380000
	coupleWeekendRate money.Amount = 450000

	dayUseWeekdayRate money.Amount = 280000
	dayUseWeekendRate money.Amount = 400000
)

var (
	weekdayTier = map[int]money.Amount{3: 430000, 4: 500000, 5: 570000, 6: 640000}
	weekendTier = map[int]money.Amount{3: 520000, 4: 590000, 5: 660000, 6: 730000}
)

// The rate card uses three distinct notions of "special day". They look like
// one rule with three typos, but all three are deliberate and priced into the
// house's real bookings, so they must not be unified:
//
//   - the overnight base tier climbs on Saturdays and forced holidays only;
//     a plain Sunday keeps the weekday tier,
//   - the extra-adult surcharge climbs on Saturdays, Sundays and holidays,
//   - day-use rates climb on Saturdays, Sundays and holidays.

func isBaseTierWeekend(date time.Time, holiday bool) bool {
	return date.Weekday() == time.Saturday || holiday
}

func isSurchargeWeekend(date time.Time, holiday bool) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday || holiday
}

func isDayUseWeekend(date time.Time, holiday bool) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday || holiday
}

// NightlyRate prices a single night for the given occupancy and date.
func NightlyRate(adults, children int, date time.Time, holiday bool) (money.Amount, error) {
	if adults < 1 {
		return 0, ErrInvalidOccupancy
	}

	tierAdults := adults
	if tierAdults > baseTierCap {
		tierAdults = baseTierCap
	}

	var base money.Amount
	weekendTierDay := isBaseTierWeekend(date, holiday)
	switch {
	case tierAdults <= 2 && weekendTierDay:
		base = coupleWeekendRate
	case tierAdults <= 2:
		base = coupleWeekdayRate
	case weekendTierDay:
		base = weekendTier[tierAdults]
	default:
		base = weekdayTier[tierAdults]
	}

	extraRate := extraAdultWeekdayRate
	if isSurchargeWeekend(date, holiday) {
		extraRate = extraAdultWeekendRate
	}
	extraAdults := adults - baseTierCap
	if extraAdults < 0 {
		extraAdults = 0
	}

	total := base
	total = total.Add(extraRate.Multiply(int64(extraAdults)))
	total = total.Add(childRate.Multiply(int64(children)))
	return total, nil
}

// PriceOvernight sums the nightly rate over every calendar day in
// [start, end). The checkout day itself is never charged. An empty range
// prices to zero; rejecting it is the caller's concern.
func PriceOvernight(adults, children int, start, end time.Time, holiday bool) (money.Amount, error) {
	if adults < 1 {
		return 0, ErrInvalidOccupancy
	}
	var total money.Amount
	for d := daterange.Day(start); d.Before(daterange.Day(end)); d = d.AddDate(0, 0, 1) {
		night, err := NightlyRate(adults, children, d, holiday)
		if err != nil {
			return 0, err
		}
		total = total.Add(night)
	}
	return total, nil
}

// PriceDayUse prices a single-day stay as one flat unit.
func PriceDayUse(adults, children int, date time.Time, holiday bool) (money.Amount, error) {
	if adults < 1 {
		return 0, ErrInvalidOccupancy
	}

	base := dayUseWeekdayRate
	extraRate := extraAdultWeekdayRate
	if isDayUseWeekend(date, holiday) {
		base = dayUseWeekendRate
		extraRate = extraAdultWeekendRate
	}

	extraAdults := adults - baseTierCap
	if extraAdults < 0 {
		extraAdults = 0
	}

	total := base
	total = total.Add(extraRate.Multiply(int64(extraAdults)))
	total = total.Add(childRate.Multiply(int64(children)))
	return total, nil
}

// ReferenceNightlyRate is the rate shown on free calendar days: a couple,
// no children, no holiday override.
func ReferenceNightlyRate(date time.Time) money.Amount {
	rate, _ := NightlyRate(2, 0, date, false)
	return rate
}
