package views

import (
	"fmt"
	"strings"

	"growthlog/backend/models"
)

const (
	chartWidth   = 640.0
	chartHeight  = 260.0
	chartPadLeft = 48.0
	chartPadBot  = 40.0
	chartPadTop  = 16.0
	chartPadRgt  = 16.0
)

// ChartPoint is one plotted date.
type ChartPoint struct {
	X, Y  float64
	Date  string
	Hours float64
}

// ChartTick is a labelled y-axis gridline.
type ChartTick struct {
	Y     float64
	Label string
}

// LineChart is the SVG geometry of the "Hours" series, x = date, y = hours.
type LineChart struct {
	Width, Height float64
	Left, Bottom  float64
	Right, Top    float64
	Series        string
	Points        []ChartPoint
	Ticks         []ChartTick
}

// NewLineChart lays out series. It returns nil for an empty series so the
// caller shows a placeholder instead.
func NewLineChart(series models.ChartSeries) *LineChart {
	n := len(series.Dates)
	if n == 0 || len(series.Hours) != n {
		return nil
	}

	maxHours := 0.0
	for _, h := range series.Hours {
		if h > maxHours {
			maxHours = h
		}
	}
	if maxHours <= 0 {
		maxHours = 1
	}

	c := &LineChart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   chartPadLeft,
		Right:  chartWidth - chartPadRgt,
		Top:    chartPadTop,
		Bottom: chartHeight - chartPadBot,
		Series: "Hours",
	}
	plotW := c.Right - c.Left
	plotH := c.Bottom - c.Top

	for i := range series.Dates {
		x := c.Left + plotW/2
		if n > 1 {
			x = c.Left + plotW*float64(i)/float64(n-1)
		}
		y := c.Bottom - plotH*series.Hours[i]/maxHours
		c.Points = append(c.Points, ChartPoint{X: x, Y: y, Date: series.Dates[i], Hours: series.Hours[i]})
	}

	for _, frac := range []float64{0, 0.5, 1} {
		c.Ticks = append(c.Ticks, ChartTick{
			Y:     c.Bottom - plotH*frac,
			Label: fmt.Sprintf("%.1f", maxHours*frac),
		})
	}
	return c
}

// Polyline is the points attribute of the SVG line.
func (c *LineChart) Polyline() string {
	parts := make([]string, len(c.Points))
	for i, p := range c.Points {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}
