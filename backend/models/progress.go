package models

// DateLayout is the calendar date format used for every stored entry.
const DateLayout = "2006-01-02"

// ProgressEntry is one logged learning session.
type ProgressEntry struct {
	Date       string  `json:"date"`
	Focus      string  `json:"focus"`
	Hours      float64 `json:"hours"`
	Learnings  string  `json:"learnings"`
	Challenges string  `json:"challenges"`
	Overcame   string  `json:"overcame"`
}

// QuickLogInput holds the sidebar quick-log fields. An empty Date means today.
type QuickLogInput struct {
	Date      string  `json:"date" form:"date" validate:"omitempty,datetime=2006-01-02"`
	Focus     string  `json:"focus" form:"focus" validate:"required"`
	Hours     float64 `json:"hours" form:"hours" validate:"gt=0,lte=24"`
	Learnings string  `json:"learnings" form:"learnings" validate:"required"`
}

// FullLogInput holds the fields of the full log entry form.
type FullLogInput struct {
	Date       string  `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Focus      string  `json:"focus" form:"focus" validate:"required"`
	Hours      float64 `json:"hours" form:"hours" validate:"gt=0,lte=24"`
	Learnings  string  `json:"learnings" form:"learnings" validate:"required"`
	Challenges string  `json:"challenges" form:"challenges"`
	Overcame   string  `json:"overcame" form:"overcame"`
}

// ProgressSummary is the aggregate view of a session's entries.
type ProgressSummary struct {
	TotalHours  float64            `json:"total_hours"`
	EntryCount  int                `json:"entry_count"`
	Latest      *ProgressEntry     `json:"latest,omitempty"`
	HoursByDate map[string]float64 `json:"hours_by_date"`
	Chart       ChartSeries        `json:"chart"`
}

// ChartSeries is HoursByDate as two parallel slices, dates ascending.
type ChartSeries struct {
	Dates []string  `json:"dates"`
	Hours []float64 `json:"hours"`
}
