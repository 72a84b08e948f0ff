package dto

import (
	reportsvc "chaletbay/internal/app/services/report"
)

type MonthlySummary struct {
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	OvernightCount   int    `json:"overnight_count"`
	DayUseCount      int    `json:"day_use_count"`
	NightsSold       int    `json:"nights_sold"`
	TotalBilled      int64  `json:"total_billed"`
	TotalDiscounts   int64  `json:"total_discounts"`
	TotalCollected   int64  `json:"total_collected"`
	Outstanding      int64  `json:"outstanding"`
	CleaningBilled   int64  `json:"cleaning_billed"`
	CleaningPending  int64  `json:"cleaning_pending"`
	BilledDisplay    string `json:"billed_display"`
	CollectedDisplay string `json:"collected_display"`
}

type MethodCollection struct {
	Method       string `json:"method"`
	Count        int    `json:"count"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

type CollectionsReport struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Items []MethodCollection `json:"items"`
}

func MapMonthlySummary(s reportsvc.MonthlySummary) MonthlySummary {
	return MonthlySummary{
		Year:             s.Year,
		Month:            int(s.Month),
		OvernightCount:   s.OvernightCount,
		DayUseCount:      s.DayUseCount,
		NightsSold:       s.NightsSold,
		TotalBilled:      int64(s.TotalBilled),
		TotalDiscounts:   int64(s.TotalDiscounts),
		TotalCollected:   int64(s.TotalCollected),
		Outstanding:      int64(s.Outstanding),
		CleaningBilled:   int64(s.CleaningBilled),
		CleaningPending:  int64(s.CleaningPending),
		BilledDisplay:    s.TotalBilled.Format(),
		CollectedDisplay: s.TotalCollected.Format(),
	}
}

func MapCollections(year, month int, items []reportsvc.MethodCollection) CollectionsReport {
	out := CollectionsReport{Year: year, Month: month, Items: make([]MethodCollection, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, MethodCollection{
			Method:       string(item.Method),
			Count:        item.Count,
			Total:        int64(item.Total),
			TotalDisplay: item.Total.Format(),
		})
	}
	return out
}
