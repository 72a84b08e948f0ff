package dto

import (
	calendarsvc "chaletbay/internal/app/services/calendar"
)

type CalendarDay struct {
	Date          string `json:"date"`
	Occupied      bool   `json:"occupied"`
	BookingID     string `json:"booking_id,omitempty"`
	Kind          string `json:"kind,omitempty"`
	CheckInDay    bool   `json:"check_in_day,omitempty"`
	CheckOutEve   bool   `json:"check_out_eve,omitempty"`
	ReferenceRate int64  `json:"reference_rate,omitempty"`
	RateDisplay   string `json:"rate_display,omitempty"`
}

type CalendarMonth struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

func MapMonthView(view calendarsvc.MonthView) CalendarMonth {
	out := CalendarMonth{Year: view.Year, Month: int(view.Month), Days: make([]CalendarDay, 0, len(view.Days))}
	for _, d := range view.Days {
		day := CalendarDay{
			Date:        d.Date.Format(dateLayout),
			Occupied:    d.Occupied,
			BookingID:   string(d.BookingID),
			Kind:        string(d.Kind),
			CheckInDay:  d.CheckInDay,
			CheckOutEve: d.CheckOutEve,
		}
		if !d.Occupied {
			day.ReferenceRate = int64(d.ReferenceRate)
			day.RateDisplay = d.ReferenceRate.Format()
		}
		out.Days = append(out.Days, day)
	}
	return out
}
