package dto

import (
	"time"

	domainbooking "chaletbay/internal/domain/booking"
	"chaletbay/internal/domain/ledger"
)

const dateLayout = "2006-01-02"

type GuestDTO struct {
	Name       string `json:"name"`
	DocumentID string `json:"document_id"`
}

type PaymentDTO struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Method string `json:"method"`
	Date   string `json:"date"`
}

type LedgerDTO struct {
	Discount             int64        `json:"discount"`
	Payments             []PaymentDTO `json:"payments"`
	DepositTotal         int64        `json:"deposit_total"`
	Balance              int64        `json:"balance"`
	CleaningFeeTotal     int64        `json:"cleaning_fee_total"`
	CleaningFeeCollected int64        `json:"cleaning_fee_collected"`
	CleaningBalance      int64        `json:"cleaning_balance"`
}

type BookingResponse struct {
	ID            string     `json:"id"`
	Kind          string     `json:"kind"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	Adults        int        `json:"adults"`
	Children      int        `json:"children"`
	Guests        []GuestDTO `json:"guests"`
	TotalPrice    int64      `json:"total_price"`
	TotalDisplay  string     `json:"total_display"`
	DurationDays  int        `json:"duration_days"`
	Ledger        LedgerDTO  `json:"ledger"`
	Schedule      string     `json:"schedule,omitempty"`
	ForcedHoliday bool       `json:"forced_holiday"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Version       int64      `json:"version"`
}

type BookingCollection struct {
	Items []BookingResponse `json:"items"`
}

type QuoteResponse struct {
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

func MapLedger(led ledger.Ledger, balance int64) LedgerDTO {
	payments := make([]PaymentDTO, 0, len(led.Payments))
	for _, p := range led.Payments {
		payments = append(payments, PaymentDTO{
			ID:     p.ID,
			Amount: int64(p.Amount),
			Method: string(p.Method),
			Date:   p.Date.Format(dateLayout),
		})
	}
	return LedgerDTO{
		Discount:             int64(led.Discount),
		Payments:             payments,
		DepositTotal:         int64(led.DepositTotal()),
		Balance:              balance,
		CleaningFeeTotal:     int64(led.CleaningFeeTotal),
		CleaningFeeCollected: int64(led.CleaningFeeCollected),
		CleaningBalance:      int64(led.CleaningBalance()),
	}
}

func MapBooking(b *domainbooking.Booking) BookingResponse {
	guests := make([]GuestDTO, 0, len(b.Guests))
	for _, g := range b.Guests {
		guests = append(guests, GuestDTO{Name: g.Name, DocumentID: g.DocumentID})
	}
	return BookingResponse{
		ID:            string(b.ID),
		Kind:          string(b.Kind),
		StartDate:     b.StartDate.Format(dateLayout),
		EndDate:       b.EndDate.Format(dateLayout),
		Adults:        b.Adults,
		Children:      b.Children,
		Guests:        guests,
		TotalPrice:    int64(b.TotalPrice),
		TotalDisplay:  b.TotalPrice.Format(),
		DurationDays:  b.DurationDays(),
		Ledger:        MapLedger(b.Ledger, int64(b.Ledger.Balance(b.TotalPrice))),
		Schedule:      b.Schedule,
		ForcedHoliday: b.ForcedHoliday,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Version:       b.Version,
	}
}

func MapBookings(items []*domainbooking.Booking) BookingCollection {
	out := BookingCollection{Items: make([]BookingResponse, 0, len(items))}
	for _, b := range items {
		out.Items = append(out.Items, MapBooking(b))
	}
	return out
}
