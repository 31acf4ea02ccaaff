package tracker

import (
	"sort"

	"growthlog/backend/models"
)

// Summarize derives the overview statistics from a store. It is recomputed on
// every call.
func Summarize(s Store) models.ProgressSummary {
	summary := models.ProgressSummary{
		HoursByDate: make(map[string]float64),
		Chart:       models.ChartSeries{Dates: []string{}, Hours: []float64{}},
	}
	if len(s.entries) == 0 {
		return summary
	}

	latest := s.entries[0]
	summary.Latest = &latest
	summary.EntryCount = len(s.entries)

	for _, entry := range s.entries {
		summary.TotalHours += entry.Hours
		summary.HoursByDate[entry.Date] += entry.Hours
	}

	summary.Chart = chartSeries(summary.HoursByDate)
	return summary
}

// ISO dates sort chronologically as plain strings.
func chartSeries(byDate map[string]float64) models.ChartSeries {
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	hours := make([]float64, len(dates))
	for i, date := range dates {
		hours[i] = byDate[date]
	}
	return models.ChartSeries{Dates: dates, Hours: hours}
}
