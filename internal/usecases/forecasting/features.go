package forecasting

import (
	"time"

	"github.com/bluzora/crop-price-api/internal/domain"
)

const rollingWindow = 7

// BuildFeatures turns a raw price series into the supervised-learning
// feature table used both for training and for seeding the recursive
// forecaster.
//
// Lags and the rolling window are positional over available observations,
// not calendar-anchored: a gap in the series shrinks the effective
// wall-clock lookback but never shifts indices. Rows where any feature is
// undefined are dropped, so a series of length L yields max(0, L-6) rows.
func BuildFeatures(series domain.CropSeries) []domain.FeatureRow {
	if len(series) < rollingWindow {
		return nil
	}

	sorted := make(domain.CropSeries, len(series))
	copy(sorted, series)
	sorted.SortByDate()

	firstDate := sorted[0].Date
	rows := make([]domain.FeatureRow, 0, len(sorted)-rollingWindow+1)

	for i := rollingWindow - 1; i < len(sorted); i++ {
		var windowSum float64
		for j := i - rollingWindow + 1; j <= i; j++ {
			windowSum += sorted[j].AveragePrice
		}

		rows = append(rows, domain.FeatureRow{
			Date:         sorted[i].Date,
			AveragePrice: sorted[i].AveragePrice,
			Lag1:         sorted[i-1].AveragePrice,
			Lag3:         sorted[i-3].AveragePrice,
			RollingAvg7:  windowSum / rollingWindow,
			DayIndex:     wholeDays(firstDate, sorted[i].Date),
		})
	}

	return rows
}

func wholeDays(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
