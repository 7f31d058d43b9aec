package forecasting

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bluzora/crop-price-api/internal/domain"
)

// recursiveState is the only state carried between forecast steps: the day
// index and price of the most recent known (or predicted) observation.
type recursiveState struct {
	dayIndex     int
	averagePrice float64
}

// Forecast produces a horizonDays-long forward price path by feeding each
// step's prediction into the next step's feature vector.
//
// Per step:
//   - lag1 is the previous step's price (historical seed on step one);
//   - lag3 is looked up in the original feature table by day index and
//     falls back to lag1 when absent; the 3-step lag is never satisfied
//     by the model's own prior outputs;
//   - the rolling mean re-anchors to the forecast path: lag1 plus the last
//     up-to-six produced predictions.
//
// Output dates are consecutive calendar days starting the day after the
// last feature row, regardless of gaps in the historical series. The
// context bounds the whole loop so one hanging model artifact cannot stall
// a batch.
func Forecast(
	ctx context.Context,
	features []domain.FeatureRow,
	model Predictor,
	horizonDays int,
) ([]domain.ForecastPoint, error) {
	if len(features) == 0 {
		return nil, ErrInsufficientData
	}

	priceByDayIndex := make(map[int]float64, len(features))
	for _, row := range features {
		priceByDayIndex[row.DayIndex] = row.AveragePrice
	}

	last := features[len(features)-1]
	lastDate := last.Date
	state := recursiveState{
		dayIndex:     last.DayIndex,
		averagePrice: last.AveragePrice,
	}

	forecasts := make([]domain.ForecastPoint, 0, horizonDays)

	for day := 1; day <= horizonDays; day++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "forecast interrupted")
		}

		futureDayIndex := state.dayIndex + day

		priceLag1 := state.averagePrice

		priceLag3, ok := priceByDayIndex[futureDayIndex-3]
		if !ok {
			priceLag3 = priceLag1
		}

		rollingAvg := pathRollingMean(priceLag1, forecasts)

		predicted, err := model.Predict(FeatureVector{
			Lag1:       priceLag1,
			Lag3:       priceLag3,
			RollingAvg: rollingAvg,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "predicting day %d", day)
		}

		forecasts = append(forecasts, domain.ForecastPoint{
			Date:           lastDate.AddDate(0, 0, day),
			PredictedPrice: predicted,
		})

		state = recursiveState{
			dayIndex:     futureDayIndex,
			averagePrice: predicted,
		}
	}

	return forecasts, nil
}

// pathRollingMean averages lag1 with the most recent predictions, at most
// six of them, so each step re-anchors to the forecast path rather than to
// fixed historical dates.
func pathRollingMean(lag1 float64, produced []domain.ForecastPoint) float64 {
	tail := produced
	if len(tail) > rollingWindow-1 {
		tail = tail[len(tail)-(rollingWindow-1):]
	}

	sum := lag1
	for _, p := range tail {
		sum += p.PredictedPrice
	}

	return sum / float64(len(tail)+1)
}
