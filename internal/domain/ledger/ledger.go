package ledger

import (
	"errors"
	"time"

	"chaletbay/internal/domain/shared/daterange"
	"chaletbay/internal/domain/shared/money"
)

var (
	ErrNegativeAmount   = errors.New("ledger: payment amount cannot be negative")
	ErrNegativeDiscount = errors.New("ledger: discount cannot be negative")
	ErrNegativeFee      = errors.New("ledger: cleaning fee amounts cannot be negative")
	ErrInvalidMethod    = errors.New("ledger: unknown payment method")
	ErrPaymentNotFound  = errors.New("ledger: payment not found")
)

type Method string

const (
	MethodCashOnHand     Method = "CASH_ON_HAND"
	MethodBankTransferA  Method = "BANK_TRANSFER_A"
	MethodBankTransferB  Method = "BANK_TRANSFER_B"
	MethodDigitalWalletA Method = "DIGITAL_WALLET_A"
	MethodDigitalWalletB Method = "DIGITAL_WALLET_B"
	MethodOther          Method = "OTHER"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCashOnHand, MethodBankTransferA, MethodBankTransferB,
		MethodDigitalWalletA, MethodDigitalWalletB, MethodOther:
		return true
	}
	return false
}

// Payment is one partial deposit against a booking. Identity is ID; a zero
// amount is a legal entry.
type Payment struct {
	ID     string
	Amount money.Amount
	Method Method
	Date   time.Time
}

// Ledger tracks the discount, the ordered partial payments and the cleaning
// fee agreed with the housekeeper. Deposit and balance figures are always
// derived from current state, never stored, so they cannot drift.
type Ledger struct {
	Discount             money.Amount
	Payments             []Payment
	CleaningFeeTotal     money.Amount
	CleaningFeeCollected money.Amount
}

func (l *Ledger) RecordPayment(p Payment) error {
	if p.Amount < 0 {
		return ErrNegativeAmount
	}
	if !p.Method.Valid() {
		return ErrInvalidMethod
	}
	p.Date = daterange.Day(p.Date)
	l.Payments = append(l.Payments, p)
	return nil
}

func (l *Ledger) RemovePayment(id string) error {
	for i, p := range l.Payments {
		if p.ID == id {
			l.Payments = append(l.Payments[:i], l.Payments[i+1:]...)
			return nil
		}
	}
	return ErrPaymentNotFound
}

func (l *Ledger) SetDiscount(amount money.Amount) error {
	if amount < 0 {
		return ErrNegativeDiscount
	}
	l.Discount = amount
	return nil
}

func (l *Ledger) SetCleaningFee(total, collected money.Amount) error {
	if total < 0 || collected < 0 {
		return ErrNegativeFee
	}
	l.CleaningFeeTotal = total
	l.CleaningFeeCollected = collected
	return nil
}

func (l Ledger) DepositTotal() money.Amount {
	var sum money.Amount
	for _, p := range l.Payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// Balance is signed: positive means the guest still owes, negative means the
// stay is overpaid and the guest holds a credit. Callers must not clamp it.
func (l Ledger) Balance(totalPrice money.Amount) money.Amount {
	return totalPrice.Sub(l.Discount).Sub(l.DepositTotal())
}

func (l Ledger) CleaningBalance() money.Amount {
	return l.CleaningFeeTotal.Sub(l.CleaningFeeCollected)
}

func (l Ledger) Copy() Ledger {
	clone := l
	clone.Payments = append([]Payment(nil), l.Payments...)
	return clone
}

// NormalizeLegacy folds a pre-ledger record (a single top-level deposit and
// method, no payment entries) into one synthetic payment dated on the
// booking's start date. After normalization every aggregation runs over the
// payments sequence alone.
func (l *Ledger) NormalizeLegacy(deposit money.Amount, method Method, startDate time.Time, paymentID string) {
	if len(l.Payments) > 0 || deposit <= 0 {
		return
	}
	if !method.Valid() {
		method = MethodOther
	}
	l.Payments = []Payment{{
		ID:     paymentID,
		Amount: deposit,
		Method: method,
		Date:   daterange.Day(startDate),
	}}
}
