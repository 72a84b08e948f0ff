package booking

import (
	"context"
	"errors"
	"time"

	"chaletbay/internal/domain/ledger"
	"chaletbay/internal/domain/pricing"
	"chaletbay/internal/domain/shared/daterange"
	"chaletbay/internal/domain/shared/events"
	"chaletbay/internal/domain/shared/money"
)

var (
	ErrInvalidKind     = errors.New("booking: unknown reservation kind")
	ErrInvalidRange    = errors.New("booking: checkout must be after checkin")
	ErrDayUseRange     = errors.New("booking: day-use bookings occupy a single date")
	ErrInvalidGuests   = errors.New("booking: adults must be at least 1 and children non-negative")
	ErrBookingNotFound = errors.New("booking: not found")
)

type BookingID string

type Kind string

const (
	KindOvernight Kind = "OVERNIGHT"
	KindDayUse    Kind = "DAY_USE"
)

func (k Kind) Valid() bool {
	return k == KindOvernight || k == KindDayUse
}

// Day-use slots the house offers. A day-use booking without an explicit
// schedule gets the daytime slot.
const (
	ScheduleDaytime = "9:00 AM - 5:30 PM"
	ScheduleEvening = "2:00 PM - 10:30 PM"
)

// Guest is one registered occupant. DocumentID may stay empty until the
// gatehouse list is finalized at check-in.
type Guest struct {
	Name       string
	DocumentID string
}

// Booking is the persisted unit for one stay at the chalet: dates, occupancy,
// guest list, the computed total and the payment ledger. TotalPrice is a
// function of kind, dates, occupancy and the holiday flag; every mutation of
// those inputs reprices the booking, so a half-edited record is never carrying
// a stale figure.
type Booking struct {
	ID            BookingID
	Kind          Kind
	StartDate     time.Time
	EndDate       time.Time
	Adults        int
	Children      int
	Guests        []Guest
	TotalPrice    money.Amount
	Ledger        ledger.Ledger
	Schedule      string
	ForcedHoliday bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
	events.EventRecorder
}

type Repository interface {
	ByID(ctx context.Context, id BookingID) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
	Save(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id BookingID) error
}

type CreateParams struct {
	ID            BookingID
	Kind          Kind
	StartDate     time.Time
	EndDate       time.Time
	Adults        int
	Children      int
	Guests        []Guest
	Schedule      string
	ForcedHoliday bool
	CreatedAt     time.Time
}

func New(params CreateParams) (*Booking, error) {
	if !params.Kind.Valid() {
		return nil, ErrInvalidKind
	}
	if params.Adults < 1 || params.Children < 0 {
		return nil, ErrInvalidGuests
	}

	start := daterange.Day(params.StartDate)
	end := daterange.Day(params.EndDate)
	switch params.Kind {
	case KindOvernight:
		if !end.After(start) {
			return nil, ErrInvalidRange
		}
	case KindDayUse:
		if end.IsZero() {
			end = start
		}
		if !end.Equal(start) {
			return nil, ErrDayUseRange
		}
		if params.Schedule == "" {
			params.Schedule = ScheduleDaytime
		}
	}

	now := params.CreatedAt.UTC()
	b := &Booking{
		ID:            params.ID,
		Kind:          params.Kind,
		StartDate:     start,
		EndDate:       end,
		Adults:        params.Adults,
		Children:      params.Children,
		Guests:        append([]Guest(nil), params.Guests...),
		Schedule:      params.Schedule,
		ForcedHoliday: params.ForcedHoliday,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := b.reprice(); err != nil {
		return nil, err
	}
	b.Record(BookingCreated{BookingID: b.ID, Kind: b.Kind, StartDate: b.StartDate, EndDate: b.EndDate, Total: b.TotalPrice, At: now})
	return b, nil
}

// Patch carries the fields a revision may replace. Nil pointers leave the
// current value untouched.
type Patch struct {
	Kind          *Kind
	StartDate     *time.Time
	EndDate       *time.Time
	Adults        *int
	Children      *int
	Guests        *[]Guest
	Schedule      *string
	ForcedHoliday *bool
}

// Revise applies the patch, revalidates the kind invariants and reprices.
// Applying a patch that restates the current values is an identity operation.
func (b *Booking) Revise(patch Patch, now time.Time) error {
	next := *b
	if patch.Kind != nil {
		next.Kind = *patch.Kind
	}
	if patch.StartDate != nil {
		next.StartDate = daterange.Day(*patch.StartDate)
	}
	if patch.EndDate != nil {
		next.EndDate = daterange.Day(*patch.EndDate)
	}
	if patch.Adults != nil {
		next.Adults = *patch.Adults
	}
	if patch.Children != nil {
		next.Children = *patch.Children
	}
	if patch.Guests != nil {
		next.Guests = append([]Guest(nil), (*patch.Guests)...)
	}
	if patch.Schedule != nil {
		next.Schedule = *patch.Schedule
	}
	if patch.ForcedHoliday != nil {
		next.ForcedHoliday = *patch.ForcedHoliday
	}

	if !next.Kind.Valid() {
		return ErrInvalidKind
	}
	if next.Adults < 1 || next.Children < 0 {
		return ErrInvalidGuests
	}
	switch next.Kind {
	case KindOvernight:
		if !next.EndDate.After(next.StartDate) {
			return ErrInvalidRange
		}
	case KindDayUse:
		next.EndDate = next.StartDate
		if next.Schedule == "" {
			next.Schedule = ScheduleDaytime
		}
	}
	if err := next.reprice(); err != nil {
		return err
	}

	next.UpdatedAt = now.UTC()
	*b = next
	b.Record(BookingRevised{BookingID: b.ID, StartDate: b.StartDate, EndDate: b.EndDate, Total: b.TotalPrice, At: b.UpdatedAt})
	return nil
}

func (b *Booking) reprice() error {
	var (
		total money.Amount
		err   error
	)
	switch b.Kind {
	case KindOvernight:
		total, err = pricing.PriceOvernight(b.Adults, b.Children, b.StartDate, b.EndDate, b.ForcedHoliday)
	case KindDayUse:
		total, err = pricing.PriceDayUse(b.Adults, b.Children, b.StartDate, b.ForcedHoliday)
	default:
		return ErrInvalidKind
	}
	if err != nil {
		return err
	}
	b.TotalPrice = total
	return nil
}

func (b *Booking) RecordPayment(p ledger.Payment, now time.Time) error {
	if err := b.Ledger.RecordPayment(p); err != nil {
		return err
	}
	b.UpdatedAt = now.UTC()
	b.Record(PaymentRecorded{BookingID: b.ID, PaymentID: p.ID, Amount: p.Amount, Method: p.Method, At: b.UpdatedAt})
	return nil
}

func (b *Booking) RemovePayment(id string, now time.Time) error {
	if err := b.Ledger.RemovePayment(id); err != nil {
		return err
	}
	b.UpdatedAt = now.UTC()
	b.Record(PaymentRemoved{BookingID: b.ID, PaymentID: id, At: b.UpdatedAt})
	return nil
}

func (b *Booking) SetDiscount(amount money.Amount, now time.Time) error {
	if err := b.Ledger.SetDiscount(amount); err != nil {
		return err
	}
	b.UpdatedAt = now.UTC()
	return nil
}

func (b *Booking) SetCleaningFee(total, collected money.Amount, now time.Time) error {
	if err := b.Ledger.SetCleaningFee(total, collected); err != nil {
		return err
	}
	b.UpdatedAt = now.UTC()
	return nil
}

// DurationDays reports the stay length shown on paperwork: one day for
// day-use, the absolute day difference for overnight stays. Reversed ranges
// from old stored records are measured, not rejected.
func (b *Booking) DurationDays() int {
	if b.Kind == KindDayUse {
		return 1
	}
	days := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

// Occupies reports whether the booking holds the chalet on the given day.
// Overnight stays hold [start, end): the checkout day is free. Day-use holds
// exactly its date.
func (b *Booking) Occupies(date time.Time) bool {
	d := daterange.Day(date)
	if b.Kind == KindDayUse {
		return d.Equal(b.StartDate)
	}
	return (d.Equal(b.StartDate) || d.After(b.StartDate)) && d.Before(b.EndDate)
}

// ConflictsWith reports whether two bookings claim any day in common. There
// is one chalet, so overnight and day-use stays conflict with each other too.
func (b *Booking) ConflictsWith(other *Booking) bool {
	if other == nil {
		return false
	}
	switch {
	case b.Kind == KindDayUse && other.Kind == KindDayUse:
		return b.StartDate.Equal(other.StartDate)
	case b.Kind == KindDayUse:
		return other.Occupies(b.StartDate)
	case other.Kind == KindDayUse:
		return b.Occupies(other.StartDate)
	default:
		br := daterange.DateRange{CheckIn: b.StartDate, CheckOut: b.EndDate}
		or := daterange.DateRange{CheckIn: other.StartDate, CheckOut: other.EndDate}
		return br.Overlaps(or)
	}
}
