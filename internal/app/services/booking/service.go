package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainbooking "chaletbay/internal/domain/booking"
	"chaletbay/internal/domain/ledger"
	"chaletbay/internal/domain/pricing"
	"chaletbay/internal/domain/shared/daterange"
	"chaletbay/internal/domain/shared/events"
	"chaletbay/internal/domain/shared/money"
)

var ErrDatesConflict = errors.New("booking: dates conflict with an existing booking")

// Publisher fans domain events out to interested consumers. Publishing is
// best effort: a broker outage never fails the booking operation.
type Publisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

type Service struct {
	Bookings  domainbooking.Repository
	Publisher Publisher
	Logger    *slog.Logger
	Now       func() time.Time
}

type CreateParams struct {
	Kind          domainbooking.Kind
	StartDate     time.Time
	EndDate       time.Time
	Adults        int
	Children      int
	Guests        []domainbooking.Guest
	Schedule      string
	ForcedHoliday bool
}

type PaymentParams struct {
	Amount money.Amount
	Method ledger.Method
	Date   time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*domainbooking.Booking, error) {
	if err := s.ensureDatesFree(ctx, params.Kind, params.StartDate, params.EndDate, ""); err != nil {
		return nil, err
	}
	b, err := domainbooking.New(domainbooking.CreateParams{
		ID:            domainbooking.BookingID(uuid.NewString()),
		Kind:          params.Kind,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		Adults:        params.Adults,
		Children:      params.Children,
		Guests:        params.Guests,
		Schedule:      params.Schedule,
		ForcedHoliday: params.ForcedHoliday,
		CreatedAt:     s.now(),
	})
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	s.publish(ctx, b)
	if s.Logger != nil {
		s.Logger.Info("booking created", "booking_id", b.ID, "kind", b.Kind, "start", b.StartDate, "total", b.TotalPrice)
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domainbooking.Booking, error) {
	return s.Bookings.ByID(ctx, domainbooking.BookingID(id))
}

func (s *Service) List(ctx context.Context) ([]*domainbooking.Booking, error) {
	return s.Bookings.List(ctx)
}

func (s *Service) Revise(ctx context.Context, id string, patch domainbooking.Patch) (*domainbooking.Booking, error) {
	b, err := s.Bookings.ByID(ctx, domainbooking.BookingID(id))
	if err != nil {
		return nil, err
	}
	if err := b.Revise(patch, s.now()); err != nil {
		return nil, err
	}
	if err := s.ensureDatesFree(ctx, b.Kind, b.StartDate, b.EndDate, b.ID); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	s.publish(ctx, b)
	if s.Logger != nil {
		s.Logger.Info("booking revised", "booking_id", b.ID, "total", b.TotalPrice)
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	b, err := s.Bookings.ByID(ctx, domainbooking.BookingID(id))
	if err != nil {
		return err
	}
	if err := s.Bookings.Delete(ctx, b.ID); err != nil {
		return err
	}
	if s.Publisher != nil {
		event := domainbooking.BookingDeleted{BookingID: b.ID, At: s.now()}
		if err := s.Publisher.Publish(ctx, event); err != nil && s.Logger != nil {
			s.Logger.Warn("event publish failed", "event", event.EventName(), "err", err)
		}
	}
	if s.Logger != nil {
		s.Logger.Info("booking deleted", "booking_id", b.ID)
	}
	return nil
}

func (s *Service) RecordPayment(ctx context.Context, id string, params PaymentParams) (*domainbooking.Booking, error) {
	b, err := s.Bookings.ByID(ctx, domainbooking.BookingID(id))
	if err != nil {
		return nil, err
	}
	date := params.Date
	if date.IsZero() {
		date = s.now()
	}
	payment := ledger.Payment{
		ID:     uuid.NewString(),
		Amount: params.Amount,
		Method: params.Method,
		Date:   date,
	}
	if err := b.RecordPayment(payment, s.now()); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	s.publish(ctx, b)
	return b, nil
}

func (s *Service) RemovePayment(ctx context.Context, id, paymentID string) (*domainbooking.Booking, error) {
	b, err := s.Bookings.ByID(ctx, domainbooking.BookingID(id))
	if err != nil {
		return nil, err
	}
	if err := b.RemovePayment(paymentID, s.now()); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	s.publish(ctx, b)
	return b, nil
}

func (s *Service) SetDiscount(ctx context.Context, id string, amount money.Amount) (*domainbooking.Booking, error) {
	b, err := s.Bookings.ByID(ctx, domainbooking.BookingID(id))
	if err != nil {
		return nil, err
	}
	if err := b.SetDiscount(amount, s.now()); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) SetCleaningFee(ctx context.Context, id string, total, collected money.Amount) (*domainbooking.Booking, error) {
	b, err := s.Bookings.ByID(ctx, domainbooking.BookingID(id))
	if err != nil {
		return nil, err
	}
	if err := b.SetCleaningFee(total, collected, s.now()); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

type QuoteParams struct {
	Kind          domainbooking.Kind
	StartDate     time.Time
	EndDate       time.Time
	Adults        int
	Children      int
	ForcedHoliday bool
}

// Quote prices a stay without persisting anything. The front desk uses it
// while negotiating dates on the phone.
func (s *Service) Quote(ctx context.Context, params QuoteParams) (money.Amount, error) {
	switch params.Kind {
	case domainbooking.KindDayUse:
		return pricing.PriceDayUse(params.Adults, params.Children, params.StartDate, params.ForcedHoliday)
	case domainbooking.KindOvernight:
		if !params.EndDate.After(params.StartDate) {
			return 0, domainbooking.ErrInvalidRange
		}
		return pricing.PriceOvernight(params.Adults, params.Children, params.StartDate, params.EndDate, params.ForcedHoliday)
	default:
		return 0, domainbooking.ErrInvalidKind
	}
}

// ensureDatesFree checks the requested window against stored bookings. It
// runs on raw dates so a conflicting request is reported as a conflict even
// when its other fields would not survive validation.
func (s *Service) ensureDatesFree(ctx context.Context, kind domainbooking.Kind, start, end time.Time, exclude domainbooking.BookingID) error {
	existing, err := s.Bookings.List(ctx)
	if err != nil {
		return err
	}
	startDay := daterange.Day(start)
	endDay := daterange.Day(end)
	if kind == domainbooking.KindDayUse {
		endDay = startDay
	}
	for _, other := range existing {
		if exclude != "" && other.ID == exclude {
			continue
		}
		var taken bool
		switch {
		case kind == domainbooking.KindDayUse:
			taken = other.Occupies(startDay)
		case other.Kind == domainbooking.KindDayUse:
			taken = !other.StartDate.Before(startDay) && other.StartDate.Before(endDay)
		default:
			taken = startDay.Before(other.EndDate) && other.StartDate.Before(endDay)
		}
		if taken {
			return ErrDatesConflict
		}
	}
	return nil
}

func (s *Service) publish(ctx context.Context, b *domainbooking.Booking) {
	pending := b.PendingEvents()
	b.ClearEvents()
	if s.Publisher == nil {
		return
	}
	for _, event := range pending {
		if err := s.Publisher.Publish(ctx, event); err != nil && s.Logger != nil {
			s.Logger.Warn("event publish failed", "event", event.EventName(), "err", err)
		}
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
