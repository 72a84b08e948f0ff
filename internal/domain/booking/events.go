package booking

import (
	"time"

	"chaletbay/internal/domain/ledger"
	"chaletbay/internal/domain/shared/money"
)

type BookingCreated struct {
	BookingID BookingID
	Kind      Kind
	StartDate time.Time
	EndDate   time.Time
	Total     money.Amount
	At        time.Time
}

func (e BookingCreated) EventName() string     { return "booking.created" }
func (e BookingCreated) AggregateID() string   { return string(e.BookingID) }
func (e BookingCreated) OccurredAt() time.Time { return e.At }

type BookingRevised struct {
	BookingID BookingID
	StartDate time.Time
	EndDate   time.Time
	Total     money.Amount
	At        time.Time
}

func (e BookingRevised) EventName() string     { return "booking.revised" }
func (e BookingRevised) AggregateID() string   { return string(e.BookingID) }
func (e BookingRevised) OccurredAt() time.Time { return e.At }

type BookingDeleted struct {
	BookingID BookingID
	At        time.Time
}

func (e BookingDeleted) EventName() string     { return "booking.deleted" }
func (e BookingDeleted) AggregateID() string   { return string(e.BookingID) }
func (e BookingDeleted) OccurredAt() time.Time { return e.At }

type PaymentRecorded struct {
	BookingID BookingID
	PaymentID string
	Amount    money.Amount
	Method    ledger.Method
	At        time.Time
}

func (e PaymentRecorded) EventName() string     { return "booking.payment_recorded" }
func (e PaymentRecorded) AggregateID() string   { return string(e.BookingID) }
func (e PaymentRecorded) OccurredAt() time.Time { return e.At }

type PaymentRemoved struct {
	BookingID BookingID
	PaymentID string
	At        time.Time
}

func (e PaymentRemoved) EventName() string     { return "booking.payment_removed" }
func (e PaymentRemoved) AggregateID() string   { return string(e.BookingID) }
func (e PaymentRemoved) OccurredAt() time.Time { return e.At }
