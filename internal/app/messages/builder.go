// Package messages renders the WhatsApp-ready texts the administrator copies
// out of the app: the guest confirmation, the gatehouse authorization list,
// the internal summary and a JSON export. The texts are in Spanish because
// that is what guests and the gatehouse receive; keep wording changes in sync
// with whoever runs the front desk.
package messages

import (
	"encoding/json"
	"fmt"
	"strings"

	domainbooking "chaletbay/internal/domain/booking"
	"chaletbay/internal/domain/ledger"
	"chaletbay/internal/domain/shared/money"
)

const (
	overnightCheckIn  = "3:00 PM"
	overnightCheckOut = "1:00 PM"

	divider = "--------------------------------"
)

type Builder struct {
	PropertyName string
}

func kindLabel(k domainbooking.Kind) string {
	if k == domainbooking.KindDayUse {
		return "Pasadía"
	}
	return "Hospedaje"
}

func day(b *domainbooking.Booking, which string) string {
	if which == "start" {
		return b.StartDate.Format("2006-01-02")
	}
	return b.EndDate.Format("2006-01-02")
}

// checkTimes resolves the arrival and departure times shown to the guest.
// Overnight stays use the fixed house hours; day-use splits its schedule
// label, for example "9:00 AM - 5:30 PM".
func checkTimes(b *domainbooking.Booking) (string, string) {
	if b.Kind != domainbooking.KindDayUse {
		return overnightCheckIn, overnightCheckOut
	}
	parts := strings.SplitN(b.Schedule, "-", 2)
	if len(parts) != 2 {
		return b.Schedule, b.Schedule
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// GuestConfirmation is the message forwarded to the guest after booking.
func (bd Builder) GuestConfirmation(b *domainbooking.Booking) string {
	checkIn, checkOut := checkTimes(b)
	guestName := "Huésped"
	if len(b.Guests) > 0 && b.Guests[0].Name != "" {
		guestName = b.Guests[0].Name
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏡 *RESERVA %s* 🏡\n", strings.ToUpper(bd.PropertyName))
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "👤 *%s:*\n", guestName)
	fmt.Fprintf(&sb, "📅 *Ingreso:* %s (%s)\n", day(b, "start"), checkIn)
	fmt.Fprintf(&sb, "📅 *Salida:* %s (%s)\n", day(b, "end"), checkOut)
	fmt.Fprintf(&sb, "🏨 *Tipo:* %s\n", kindLabel(b.Kind))
	fmt.Fprintf(&sb, "👥 *Personas:* %d\n", b.Adults)
	fmt.Fprintf(&sb, "💰 *Saldo Pendiente:* %s\n", b.Ledger.Balance(b.TotalPrice).Format())
	sb.WriteString(divider)
	return sb.String()
}

// GateAuthorization is the list handed to the gatehouse so guests are let in.
func (bd Builder) GateAuthorization(b *domainbooking.Booking) string {
	guestList := "No registrados"
	if len(b.Guests) > 0 {
		lines := make([]string, 0, len(b.Guests))
		for _, g := range b.Guests {
			lines = append(lines, fmt.Sprintf("• %s - %s", g.Name, g.DocumentID))
		}
		guestList = strings.Join(lines, "\n")
	}

	var sb strings.Builder
	sb.WriteString("👮 *AUTORIZACIÓN PORTERÍA* 👮\n")
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "📅 *Fecha:* %s al %s\n", day(b, "start"), day(b, "end"))
	fmt.Fprintf(&sb, "🏠 *%s*\n", bd.PropertyName)
	sb.WriteString("👥 *Huéspedes:*\n")
	sb.WriteString(guestList + "\n")
	sb.WriteString(divider)
	return sb.String()
}

// AdminSummary is the internal breakdown with money figures the guest never
// sees.
func (bd Builder) AdminSummary(b *domainbooking.Booking) string {
	totalGuests := b.Adults + b.Children
	finalTotal := b.TotalPrice.Sub(b.Ledger.Discount)
	days := b.DurationDays()

	var dayLabel string
	switch {
	case b.Kind == domainbooking.KindDayUse && days == 1:
		dayLabel = "Día Pasadía"
	case b.Kind == domainbooking.KindDayUse:
		dayLabel = "Días Pasadía"
	case days == 1:
		dayLabel = "Día Hospedaje"
	default:
		dayLabel = "Días Hospedaje"
	}

	paymentBreakdown := "• " + money.Amount(0).Format() + " (No especificado)"
	if len(b.Ledger.Payments) > 0 {
		lines := make([]string, 0, len(b.Ledger.Payments))
		for _, p := range b.Ledger.Payments {
			lines = append(lines, fmt.Sprintf("• %s (%s) - %s", p.Amount.Format(), p.Method, p.Date.Format("2006-01-02")))
		}
		paymentBreakdown = strings.Join(lines, "\n")
	}

	var sb strings.Builder
	sb.WriteString("📝 *RESUMEN DE RESERVA (ADMIN)* 📝\n")
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "👥 *Huéspedes totales:* %d (%d adultos, %d niños)\n", totalGuests, b.Adults, b.Children)
	fmt.Fprintf(&sb, "📅 *Duración:* %d %s\n", days, dayLabel)
	fmt.Fprintf(&sb, "💰 *Desglose:* %s (Tarifa base + adicionales)\n", b.TotalPrice.Format())
	fmt.Fprintf(&sb, "📉 *Descuento:* %s\n", b.Ledger.Discount.Format())
	fmt.Fprintf(&sb, "✅ *Total:* %s\n", finalTotal.Format())
	sb.WriteString("💳 *Abonos:*\n")
	sb.WriteString(paymentBreakdown + "\n")
	fmt.Fprintf(&sb, "🧹 *Aseo:* %s (Abonado: %s, Saldo: %s)\n",
		b.Ledger.CleaningFeeTotal.Format(), b.Ledger.CleaningFeeCollected.Format(), b.Ledger.CleaningBalance().Format())
	sb.WriteString(divider)
	return sb.String()
}

type exportPayment struct {
	Amount money.Amount  `json:"amount"`
	Method ledger.Method `json:"method"`
	Date   string        `json:"date"`
}

type exportRecord struct {
	Cliente     string          `json:"cliente"`
	Tipo        string          `json:"tipo"`
	Inicio      string          `json:"inicio"`
	Fin         string          `json:"fin"`
	Huespedes   int             `json:"huespedes"`
	Total       money.Amount    `json:"total"`
	Abonos      []exportPayment `json:"abonos"`
	AseoTotal   money.Amount    `json:"aseo_total"`
	AseoAbonado money.Amount    `json:"aseo_abonado"`
}

// ExportJSON renders a machine-readable snapshot of the booking. Field names
// match the historical export format consumed by the owner's spreadsheets.
func (bd Builder) ExportJSON(b *domainbooking.Booking) (string, error) {
	record := exportRecord{
		Cliente:     "No registrado",
		Tipo:        kindLabel(b.Kind),
		Inicio:      day(b, "start"),
		Fin:         day(b, "end"),
		Huespedes:   b.Adults + b.Children,
		Total:       b.TotalPrice.Sub(b.Ledger.Discount),
		Abonos:      []exportPayment{},
		AseoTotal:   b.Ledger.CleaningFeeTotal,
		AseoAbonado: b.Ledger.CleaningFeeCollected,
	}
	if len(b.Guests) > 0 && b.Guests[0].Name != "" {
		record.Cliente = b.Guests[0].Name
	}
	for _, p := range b.Ledger.Payments {
		record.Abonos = append(record.Abonos, exportPayment{Amount: p.Amount, Method: p.Method, Date: p.Date.Format("2006-01-02")})
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
