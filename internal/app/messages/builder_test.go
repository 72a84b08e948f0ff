package messages

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "chaletbay/internal/domain/booking"
	"chaletbay/internal/domain/ledger"
)

func fixtureBooking(t *testing.T) *domainbooking.Booking {
	t.Helper()
	start := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	b, err := domainbooking.New(domainbooking.CreateParams{
		ID:        "b1",
		Kind:      domainbooking.KindOvernight,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
		Adults:    4,
		Children:  1,
		Guests: []domainbooking.Guest{
			{Name: "Laura Pérez", DocumentID: "1043567890"},
			{Name: "Andrés Pérez", DocumentID: "1043567891"},
		},
		CreatedAt: start,
	})
	require.NoError(t, err)
	require.NoError(t, b.SetDiscount(40000, start))
	require.NoError(t, b.RecordPayment(ledger.Payment{ID: "p1", Amount: 500000, Method: ledger.MethodBankTransferA, Date: start}, start))
	require.NoError(t, b.SetCleaningFee(80000, 30000, start))
	return b
}

func TestGuestConfirmation(t *testing.T) {
	b := fixtureBooking(t)
	msg := Builder{PropertyName: "Chalet Ohanna Bay"}.GuestConfirmation(b)

	assert.Contains(t, msg, "RESERVA CHALET OHANNA BAY")
	assert.Contains(t, msg, "Laura Pérez")
	assert.Contains(t, msg, "2025-06-12 (3:00 PM)")
	assert.Contains(t, msg, "2025-06-14 (1:00 PM)")
	assert.Contains(t, msg, "Hospedaje")
	balance := b.Ledger.Balance(b.TotalPrice)
	assert.Contains(t, msg, balance.Format())
}

func TestGuestConfirmationDayUseSplitsSchedule(t *testing.T) {
	start := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	b, err := domainbooking.New(domainbooking.CreateParams{
		ID:        "b2",
		Kind:      domainbooking.KindDayUse,
		StartDate: start,
		Adults:    2,
		CreatedAt: start,
	})
	require.NoError(t, err)
	require.Equal(t, domainbooking.ScheduleDaytime, b.Schedule)

	msg := Builder{PropertyName: "Chalet Ohanna Bay"}.GuestConfirmation(b)
	assert.Contains(t, msg, "(9:00 AM)")
	assert.Contains(t, msg, "(5:30 PM)")
	assert.Contains(t, msg, "Pasadía")
}

func TestGateAuthorizationListsGuests(t *testing.T) {
	b := fixtureBooking(t)
	msg := Builder{PropertyName: "Chalet Ohanna Bay"}.GateAuthorization(b)

	assert.Contains(t, msg, "AUTORIZACIÓN PORTERÍA")
	assert.Contains(t, msg, "• Laura Pérez - 1043567890")
	assert.Contains(t, msg, "• Andrés Pérez - 1043567891")
	assert.Contains(t, msg, "2025-06-12 al 2025-06-14")
}

func TestGateAuthorizationWithoutGuests(t *testing.T) {
	b := fixtureBooking(t)
	b.Guests = nil
	msg := Builder{PropertyName: "Chalet Ohanna Bay"}.GateAuthorization(b)
	assert.Contains(t, msg, "No registrados")
}

func TestAdminSummaryBreakdown(t *testing.T) {
	b := fixtureBooking(t)
	msg := Builder{PropertyName: "Chalet Ohanna Bay"}.AdminSummary(b)

	assert.Contains(t, msg, "5 (4 adultos, 1 niños)")
	assert.Contains(t, msg, "2 Días Hospedaje")
	assert.Contains(t, msg, b.TotalPrice.Format())
	assert.Contains(t, msg, b.TotalPrice.Sub(40000).Format())
	assert.Contains(t, msg, "(BANK_TRANSFER_A) - 2025-06-12")
	assert.Contains(t, msg, "Saldo: $50.000")
}

func TestExportJSON(t *testing.T) {
	b := fixtureBooking(t)
	out, err := Builder{PropertyName: "Chalet Ohanna Bay"}.ExportJSON(b)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Laura Pérez", decoded["cliente"])
	assert.Equal(t, "Hospedaje", decoded["tipo"])
	assert.Equal(t, "2025-06-12", decoded["inicio"])
	assert.Equal(t, float64(5), decoded["huespedes"])
	assert.Equal(t, float64(int64(b.TotalPrice)-40000), decoded["total"])
	abonos, ok := decoded["abonos"].([]any)
	require.True(t, ok)
	assert.Len(t, abonos, 1)
}
