package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaletbay/internal/domain/ledger"
	"chaletbay/internal/domain/shared/money"
)

var (
	thursday = time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	now      = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
)

func newOvernight(t *testing.T) *Booking {
	t.Helper()
	b, err := New(CreateParams{
		ID:        "b1",
		Kind:      KindOvernight,
		StartDate: thursday,
		EndDate:   sunday,
		Adults:    4,
		Children:  1,
		Guests:    []Guest{{Name: "Laura Pérez", DocumentID: "123"}},
		CreatedAt: now,
	})
	require.NoError(t, err)
	return b
}

func TestNewOvernightPricesAtConstruction(t *testing.T) {
	b := newOvernight(t)
	// Thu + Fri weekday nights, Sat weekend night.
	assert.Equal(t, money.Amount(540000+540000+630000), b.TotalPrice)
	assert.Equal(t, 3, b.DurationDays())

	events := b.PendingEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "booking.created", events[0].EventName())
}

func TestNewValidation(t *testing.T) {
	_, err := New(CreateParams{ID: "b", Kind: "WEEKLY", StartDate: thursday, EndDate: sunday, Adults: 2, CreatedAt: now})
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = New(CreateParams{ID: "b", Kind: KindOvernight, StartDate: sunday, EndDate: thursday, Adults: 2, CreatedAt: now})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(CreateParams{ID: "b", Kind: KindOvernight, StartDate: thursday, EndDate: sunday, Adults: 0, CreatedAt: now})
	assert.ErrorIs(t, err, ErrInvalidGuests)

	_, err = New(CreateParams{ID: "b", Kind: KindDayUse, StartDate: thursday, EndDate: sunday, Adults: 2, CreatedAt: now})
	assert.ErrorIs(t, err, ErrDayUseRange)
}

func TestNewDayUseDefaultsEndDate(t *testing.T) {
	b, err := New(CreateParams{ID: "b", Kind: KindDayUse, StartDate: sunday, Adults: 2, Schedule: ScheduleEvening, CreatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, b.StartDate, b.EndDate)
	assert.Equal(t, money.Amount(400000), b.TotalPrice)
	assert.Equal(t, 1, b.DurationDays())
	assert.Equal(t, ScheduleEvening, b.Schedule)
}

func TestNewDayUseDefaultsSchedule(t *testing.T) {
	b, err := New(CreateParams{ID: "b", Kind: KindDayUse, StartDate: sunday, Adults: 2, CreatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, ScheduleDaytime, b.Schedule)

	overnight := newOvernight(t)
	assert.Empty(t, overnight.Schedule, "overnight stays carry no day-use slot")
}

func TestReviseToDayUseDefaultsSchedule(t *testing.T) {
	b := newOvernight(t)

	kind := KindDayUse
	require.NoError(t, b.Revise(Patch{Kind: &kind}, now.Add(time.Hour)))
	assert.Equal(t, b.StartDate, b.EndDate)
	assert.Equal(t, ScheduleDaytime, b.Schedule)
}

func TestReviseRecomputesPrice(t *testing.T) {
	b := newOvernight(t)
	b.ClearEvents()

	end := thursday.AddDate(0, 0, 1)
	require.NoError(t, b.Revise(Patch{EndDate: &end}, now.Add(time.Hour)))
	assert.Equal(t, money.Amount(540000), b.TotalPrice)

	events := b.PendingEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "booking.revised", events[0].EventName())
}

func TestReviseUnchangedPatchIsIdentity(t *testing.T) {
	b := newOvernight(t)
	require.NoError(t, b.SetDiscount(50000, now))
	require.NoError(t, b.RecordPayment(ledger.Payment{ID: "p1", Amount: 200000, Method: ledger.MethodCashOnHand, Date: thursday}, now))

	totalBefore := b.TotalPrice
	balanceBefore := b.Ledger.Balance(b.TotalPrice)

	require.NoError(t, b.Revise(Patch{}, now.Add(time.Hour)))
	assert.Equal(t, totalBefore, b.TotalPrice)
	assert.Equal(t, balanceBefore, b.Ledger.Balance(b.TotalPrice))
}

func TestReviseRejectsInvalidPatch(t *testing.T) {
	b := newOvernight(t)
	total := b.TotalPrice

	zero := 0
	err := b.Revise(Patch{Adults: &zero}, now)
	assert.ErrorIs(t, err, ErrInvalidGuests)
	assert.Equal(t, total, b.TotalPrice)
}

func TestDurationDaysToleratesReversedRange(t *testing.T) {
	b := newOvernight(t)
	// Old stored records can carry a reversed range; duration is measured,
	// not rejected.
	b.StartDate, b.EndDate = b.EndDate, b.StartDate
	assert.Equal(t, 3, b.DurationDays())
}

func TestOccupiesHalfOpenRange(t *testing.T) {
	b := newOvernight(t)
	assert.True(t, b.Occupies(thursday))
	assert.True(t, b.Occupies(sunday.AddDate(0, 0, -1)))
	assert.False(t, b.Occupies(sunday), "checkout day is free")
}

func TestConflictsWith(t *testing.T) {
	overnight := newOvernight(t)

	other, err := New(CreateParams{ID: "b2", Kind: KindOvernight, StartDate: sunday, EndDate: sunday.AddDate(0, 0, 2), Adults: 2, CreatedAt: now})
	require.NoError(t, err)
	assert.False(t, overnight.ConflictsWith(other), "back to back stays share the checkout day")

	dayUse, err := New(CreateParams{ID: "b3", Kind: KindDayUse, StartDate: thursday.AddDate(0, 0, 1), Adults: 2, CreatedAt: now})
	require.NoError(t, err)
	assert.True(t, overnight.ConflictsWith(dayUse))
	assert.True(t, dayUse.ConflictsWith(overnight))

	sameDayUse, err := New(CreateParams{ID: "b4", Kind: KindDayUse, StartDate: thursday.AddDate(0, 0, 1), Adults: 3, CreatedAt: now})
	require.NoError(t, err)
	assert.True(t, dayUse.ConflictsWith(sameDayUse))

	checkoutDayUse, err := New(CreateParams{ID: "b5", Kind: KindDayUse, StartDate: sunday, Adults: 2, CreatedAt: now})
	require.NoError(t, err)
	assert.False(t, overnight.ConflictsWith(checkoutDayUse))
}

func TestPaymentMutatorsTouchLedger(t *testing.T) {
	b := newOvernight(t)
	b.ClearEvents()

	require.NoError(t, b.RecordPayment(ledger.Payment{ID: "p1", Amount: 300000, Method: ledger.MethodBankTransferA, Date: thursday}, now))
	require.NoError(t, b.SetCleaningFee(80000, 0, now))
	assert.Equal(t, money.Amount(300000), b.Ledger.DepositTotal())
	assert.Equal(t, money.Amount(80000), b.Ledger.CleaningBalance())

	require.NoError(t, b.RemovePayment("p1", now))
	assert.ErrorIs(t, b.RemovePayment("p1", now), ledger.ErrPaymentNotFound)

	events := b.PendingEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "booking.payment_recorded", events[0].EventName())
	assert.Equal(t, "booking.payment_removed", events[1].EventName())
}
