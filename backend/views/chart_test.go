package views

import (
	"testing"

	"growthlog/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineChartEmpty(t *testing.T) {
	assert.Nil(t, NewLineChart(models.ChartSeries{}))
	assert.Nil(t, NewLineChart(models.ChartSeries{Dates: []string{"2024-01-01"}}))
}

func TestNewLineChartGeometry(t *testing.T) {
	c := NewLineChart(models.ChartSeries{
		Dates: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		Hours: []float64{2, 4, 1},
	})
	require.NotNil(t, c)
	require.Len(t, c.Points, 3)

	assert.Equal(t, "Hours", c.Series)
	assert.Equal(t, c.Left, c.Points[0].X)
	assert.Equal(t, c.Right, c.Points[2].X)
	assert.Equal(t, c.Top, c.Points[1].Y, "the largest value touches the top")
	assert.Less(t, c.Points[0].Y, c.Points[2].Y)
	assert.Equal(t, "4.0", c.Ticks[2].Label)
	assert.Equal(t, "48.0,118.0 336.0,16.0 624.0,169.0", c.Polyline())
}

func TestNewLineChartSinglePointCentered(t *testing.T) {
	c := NewLineChart(models.ChartSeries{Dates: []string{"2024-01-01"}, Hours: []float64{3}})
	require.NotNil(t, c)

	assert.Equal(t, c.Left+(c.Right-c.Left)/2, c.Points[0].X)
}
