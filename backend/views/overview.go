package views

import (
	"fmt"

	"growthlog/backend/models"
	"growthlog/backend/tracker"
)

const (
	NoDataMessage  = "No progress data available yet. Start logging your learning!"
	NoChartMessage = "No learning data available for the chart yet."
)

// Metrics are the three headline numbers of the overview page.
type Metrics struct {
	TotalHours string `json:"total_hours"`
	EntryCount int    `json:"entry_count"`
	LastFocus  string `json:"last_focus"`
}

// Overview is the render-ready overview page. Building it never changes the
// state it was built from.
type Overview struct {
	Empty   bool                   `json:"empty"`
	Metrics Metrics                `json:"metrics"`
	Chart   *LineChart             `json:"-"`
	Series  models.ChartSeries     `json:"chart"`
	Rows    []models.ProgressEntry `json:"entries"`
	Summary models.ProgressSummary `json:"summary"`
}

func BuildOverview(state tracker.State) Overview {
	summary := tracker.Summarize(state.Entries)
	ov := Overview{
		Empty:   summary.EntryCount == 0,
		Series:  summary.Chart,
		Rows:    state.Entries.All(),
		Summary: summary,
	}
	if ov.Empty {
		return ov
	}

	ov.Metrics = Metrics{
		TotalHours: fmt.Sprintf("%.1f hours", summary.TotalHours),
		EntryCount: summary.EntryCount,
		LastFocus:  fmt.Sprintf("%s (%s)", summary.Latest.Focus, summary.Latest.Date),
	}
	ov.Chart = NewLineChart(summary.Chart)
	return ov
}
