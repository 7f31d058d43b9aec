package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluzora/crop-price-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func histPoint(d int, avg, min, max float64) domain.PricePoint {
	return domain.PricePoint{Date: day(d), AveragePrice: avg, MinPrice: min, MaxPrice: max}
}

func predPoint(d int, price float64) domain.ForecastPoint {
	return domain.ForecastPoint{Date: day(d), PredictedPrice: price}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		historical domain.CropSeries
		predicted  []domain.ForecastPoint
		start, end time.Time
		validate   func(t *testing.T, s domain.Summary)
	}{
		{
			name: "historical aggregates over window",
			historical: domain.CropSeries{
				histPoint(1, 10, 10, 12),
				histPoint(2, 12, 11, 12),
				histPoint(3, 11, 10, 11),
			},
			start: day(1),
			end:   day(3),
			validate: func(t *testing.T, s domain.Summary) {
				assert.Equal(t, 11.0, s.OverallAverage)
				assert.Equal(t, 10.0, s.OverallMin)
				assert.Equal(t, 12.0, s.OverallMax)
				assert.Equal(t, 10.0, s.PriceChangePercent)
			},
		},
		{
			name: "predicted fallback when window has no historical points",
			historical: domain.CropSeries{
				histPoint(1, 10, 9, 11),
			},
			predicted: []domain.ForecastPoint{
				predPoint(10, 20),
				predPoint(11, 22),
			},
			start: day(10),
			end:   day(12),
			validate: func(t *testing.T, s domain.Summary) {
				assert.Equal(t, 21.0, s.OverallAverage)
				assert.Equal(t, 20.0, s.OverallMin)
				assert.Equal(t, 22.0, s.OverallMax)
			},
		},
		{
			name:       "empty window yields all zeros",
			historical: domain.CropSeries{},
			predicted:  nil,
			start:      day(1),
			end:        day(31),
			validate: func(t *testing.T, s domain.Summary) {
				assert.Equal(t, domain.Summary{}, s)
			},
		},
		{
			name: "constant-ratio series has zero volatility",
			historical: domain.CropSeries{
				histPoint(1, 100, 100, 100),
				histPoint(2, 110, 110, 110),
				histPoint(3, 121, 121, 121),
			},
			start: day(1),
			end:   day(3),
			validate: func(t *testing.T, s domain.Summary) {
				assert.Equal(t, 0.0, s.VolatilityPercent)
			},
		},
		{
			name: "single point yields zero volatility",
			historical: domain.CropSeries{
				histPoint(1, 100, 100, 100),
			},
			start: day(1),
			end:   day(3),
			validate: func(t *testing.T, s domain.Summary) {
				assert.Equal(t, 0.0, s.VolatilityPercent)
			},
		},
		{
			name: "zero start price yields zero change",
			historical: domain.CropSeries{
				histPoint(1, 0, 0, 0),
				histPoint(3, 15, 14, 16),
			},
			start: day(1),
			end:   day(3),
			validate: func(t *testing.T, s domain.Summary) {
				assert.Equal(t, 0.0, s.PriceChangePercent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Summarize(tt.historical, tt.predicted, tt.start, tt.end))
		})
	}
}

func TestVolatilityScaleInvariance(t *testing.T) {
	base := domain.CropSeries{
		histPoint(1, 100, 0, 0),
		histPoint(2, 105, 0, 0),
		histPoint(3, 98, 0, 0),
		histPoint(4, 110, 0, 0),
	}

	scaled := make(domain.CropSeries, len(base))
	for i, p := range base {
		scaled[i] = histPoint(i+1, p.AveragePrice*1000, 0, 0)
	}

	a := Summarize(base, nil, day(1), day(4))
	b := Summarize(scaled, nil, day(1), day(4))

	// Returns-based volatility only sees relative moves.
	assert.InDelta(t, a.VolatilityPercent, b.VolatilityPercent, 0.01)
	assert.Greater(t, a.VolatilityPercent, 0.0)
}

func TestVolatilitySkipsNonPositiveBase(t *testing.T) {
	hist := domain.CropSeries{
		histPoint(1, 100, 0, 0),
		histPoint(2, 0, 0, 0),
		histPoint(3, 50, 0, 0),
		histPoint(4, 60, 0, 0),
	}

	s := Summarize(hist, nil, day(1), day(4))

	// The 0 -> 50 step has no valid base and is dropped; the remaining
	// returns still produce a finite number.
	assert.False(t, s.VolatilityPercent != s.VolatilityPercent, "volatility must not be NaN")
}

func TestNearestPriceTieBreak(t *testing.T) {
	hist := domain.CropSeries{
		histPoint(1, 10, 0, 0),
		histPoint(3, 20, 0, 0),
	}

	// Day 2 is equidistant from day 1 and day 3; the earlier point wins.
	assert.Equal(t, 10.0, nearestPrice(hist, day(2)))

	// Exact hits resolve to the point itself.
	assert.Equal(t, 20.0, nearestPrice(hist, day(3)))

	// Outside the series the nearest edge is used.
	assert.Equal(t, 10.0, nearestPrice(hist, day(1).AddDate(0, -1, 0)))
	assert.Equal(t, 20.0, nearestPrice(hist, day(30)))

	// No points at all resolve to 0.
	assert.Equal(t, 0.0, nearestPrice(domain.CropSeries{}, day(1)))
}

func TestCombineSeries(t *testing.T) {
	historical := domain.CropSeries{
		histPoint(1, 10, 0, 0),
		histPoint(2, 11, 0, 0),
		histPoint(3, 12, 0, 0),
	}
	predicted := []domain.ForecastPoint{
		predPoint(2, 99),  // overlaps historical, must lose
		predPoint(3, 98),  // overlaps the last historical date, must lose
		predPoint(4, 13),  // strictly after the cutoff, surfaces
		predPoint(5, 14),
	}

	combined := CombineSeries(historical, predicted)

	require.Len(t, combined, 5)
	assert.Equal(t, domain.CombinedSeriesEntry{Date: "2024-01-01", Value: 10}, combined[0])
	assert.Equal(t, domain.CombinedSeriesEntry{Date: "2024-01-02", Value: 11}, combined[1])
	assert.Equal(t, domain.CombinedSeriesEntry{Date: "2024-01-03", Value: 12}, combined[2])
	assert.Equal(t, domain.CombinedSeriesEntry{Date: "2024-01-04", Value: 13}, combined[3])
	assert.Equal(t, domain.CombinedSeriesEntry{Date: "2024-01-05", Value: 14}, combined[4])
}

func TestCombineSeriesNoHistorical(t *testing.T) {
	predicted := []domain.ForecastPoint{
		predPoint(2, 20),
		predPoint(1, 19),
	}

	combined := CombineSeries(domain.CropSeries{}, predicted)

	// With no historical data every forecast surfaces, sorted ascending.
	require.Len(t, combined, 2)
	assert.Equal(t, "2024-01-01", combined[0].Date)
	assert.Equal(t, "2024-01-02", combined[1].Date)
}

func TestMergeResults(t *testing.T) {
	historical := domain.CropSeries{
		histPoint(2, 11, 0, 0),
		histPoint(1, 10, 0, 0),
	}
	predicted := []domain.ForecastPoint{
		predPoint(2, 99),
		predPoint(3, 12),
	}

	results := MergeResults(historical, predicted)

	require.Len(t, results, 4)
	assert.Equal(t, domain.TaggedPricePoint{Date: "2024-01-01", Type: domain.SeriesTypeHistorical, Price: 10}, results[0])
	// Shared date: historical sorts before predicted.
	assert.Equal(t, domain.SeriesTypeHistorical, results[1].Type)
	assert.Equal(t, domain.SeriesTypePredicted, results[2].Type)
	assert.Equal(t, "2024-01-02", results[2].Date)
	assert.Equal(t, domain.TaggedPricePoint{Date: "2024-01-03", Type: domain.SeriesTypePredicted, Price: 12}, results[3])
}

func TestBuildPriceReportCutoffUsesFullHistory(t *testing.T) {
	// The last historical point (day 5) sits outside the requested window.
	// A forecast for day 4 must still be suppressed in the combined curve
	// because the true historical series extends past it.
	historical := domain.CropSeries{
		histPoint(1, 10, 0, 0),
		histPoint(2, 11, 0, 0),
		histPoint(3, 12, 0, 0),
		histPoint(5, 13, 0, 0),
	}
	predicted := []domain.ForecastPoint{
		predPoint(4, 99),
		predPoint(6, 14),
	}

	report := BuildPriceReport(historical, predicted, day(1), day(4))

	for _, e := range report.Combined {
		assert.NotEqual(t, 99.0, e.Value, "forecast before the historical cutoff leaked into the curve")
	}

	dates := make([]string, 0, len(report.Combined))
	for _, e := range report.Combined {
		dates = append(dates, e.Date)
	}
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, dates)
}

func TestBuildPriceReportWindowing(t *testing.T) {
	historical := domain.CropSeries{
		histPoint(1, 10, 9, 11),
		histPoint(2, 12, 11, 13),
		histPoint(10, 20, 19, 21),
	}
	predicted := []domain.ForecastPoint{
		predPoint(11, 21),
		predPoint(20, 25),
	}

	report := BuildPriceReport(historical, predicted, day(1), day(11))

	// Results only carry the windowed points.
	require.Len(t, report.Results, 4)
	assert.Equal(t, "2024-01-01", report.Results[0].Date)
	assert.Equal(t, "2024-01-11", report.Results[3].Date)
	assert.Equal(t, domain.SeriesTypePredicted, report.Results[3].Type)

	// The summary reflects the historical subset of the window.
	assert.Equal(t, 14.0, report.OverallSummary.OverallAverage)
	assert.Equal(t, 9.0, report.OverallSummary.OverallMin)
	assert.Equal(t, 21.0, report.OverallSummary.OverallMax)
	assert.Equal(t, 100.0, report.OverallSummary.PriceChangePercent)
}
