package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bluzora/crop-price-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func seriesOf(prices []float64, dates []time.Time) domain.CropSeries {
	series := make(domain.CropSeries, len(prices))
	for i := range prices {
		series[i] = domain.PricePoint{Date: dates[i], AveragePrice: prices[i]}
	}
	return series
}

func consecutiveDates(start, count int) []time.Time {
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = day(start + i)
	}
	return dates
}

func TestBuildFeatures(t *testing.T) {
	tests := []struct {
		name     string
		series   domain.CropSeries
		validate func(t *testing.T, rows []domain.FeatureRow)
	}{
		{
			name:   "empty series yields no rows",
			series: domain.CropSeries{},
			validate: func(t *testing.T, rows []domain.FeatureRow) {
				assert.Empty(t, rows)
			},
		},
		{
			name:   "six observations are not enough for one row",
			series: seriesOf([]float64{10, 11, 12, 13, 14, 15}, consecutiveDates(1, 6)),
			validate: func(t *testing.T, rows []domain.FeatureRow) {
				assert.Empty(t, rows)
			},
		},
		{
			name:   "exactly seven observations yield one row",
			series: seriesOf([]float64{10, 11, 12, 13, 14, 15, 16}, consecutiveDates(1, 7)),
			validate: func(t *testing.T, rows []domain.FeatureRow) {
				assert.Len(t, rows, 1)

				row := rows[0]
				assert.Equal(t, day(7), row.Date)
				assert.Equal(t, 16.0, row.AveragePrice)
				assert.Equal(t, 15.0, row.Lag1)
				assert.Equal(t, 13.0, row.Lag3)
				assert.InDelta(t, 13.0, row.RollingAvg7, 1e-9)
				assert.Equal(t, 6, row.DayIndex)
			},
		},
		{
			name:   "each extra observation adds one row",
			series: seriesOf([]float64{10, 11, 12, 13, 14, 15, 16, 17, 18}, consecutiveDates(1, 9)),
			validate: func(t *testing.T, rows []domain.FeatureRow) {
				assert.Len(t, rows, 3)

				second := rows[1]
				assert.Equal(t, day(8), second.Date)
				assert.Equal(t, 16.0, second.Lag1)
				assert.Equal(t, 14.0, second.Lag3)
				assert.InDelta(t, 14.0, second.RollingAvg7, 1e-9)
				assert.Equal(t, 7, second.DayIndex)
			},
		},
		{
			name: "calendar gap widens the day index but not the lags",
			series: seriesOf(
				[]float64{10, 11, 12, 13, 14, 15, 16},
				[]time.Time{day(1), day(2), day(3), day(4), day(5), day(6), day(10)},
			),
			validate: func(t *testing.T, rows []domain.FeatureRow) {
				assert.Len(t, rows, 1)

				row := rows[0]
				// Positional lags step over the gap.
				assert.Equal(t, 15.0, row.Lag1)
				assert.Equal(t, 13.0, row.Lag3)
				// The day index stays calendar-based.
				assert.Equal(t, 9, row.DayIndex)
			},
		},
		{
			name: "unsorted input is ordered before windowing",
			series: seriesOf(
				[]float64{16, 10, 15, 11, 14, 12, 13},
				[]time.Time{day(7), day(1), day(6), day(2), day(5), day(3), day(4)},
			),
			validate: func(t *testing.T, rows []domain.FeatureRow) {
				assert.Len(t, rows, 1)

				row := rows[0]
				assert.Equal(t, day(7), row.Date)
				assert.Equal(t, 16.0, row.AveragePrice)
				assert.Equal(t, 15.0, row.Lag1)
				assert.Equal(t, 13.0, row.Lag3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := BuildFeatures(tt.series)
			tt.validate(t, rows)
		})
	}
}

func TestBuildFeaturesDoesNotMutateInput(t *testing.T) {
	series := seriesOf(
		[]float64{16, 10, 15, 11, 14, 12, 13},
		[]time.Time{day(7), day(1), day(6), day(2), day(5), day(3), day(4)},
	)

	BuildFeatures(series)

	assert.Equal(t, day(7), series[0].Date)
	assert.Equal(t, 16.0, series[0].AveragePrice)
}
