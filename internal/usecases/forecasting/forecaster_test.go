package forecasting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluzora/crop-price-api/internal/domain"
)

type predictorStub func(FeatureVector) (float64, error)

func (f predictorStub) Predict(v FeatureVector) (float64, error) {
	return f(v)
}

func featureTable(prices []float64, startIndex int) []domain.FeatureRow {
	rows := make([]domain.FeatureRow, len(prices))
	for i, p := range prices {
		rows[i] = domain.FeatureRow{
			Date:         day(startIndex + i + 1),
			AveragePrice: p,
			DayIndex:     startIndex + i,
		}
	}
	return rows
}

func TestForecastEmptyFeatures(t *testing.T) {
	identity := predictorStub(func(v FeatureVector) (float64, error) {
		return v.Lag1, nil
	})

	_, err := Forecast(context.Background(), nil, identity, 10)

	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestForecastProducesConsecutiveDates(t *testing.T) {
	features := featureTable([]float64{100, 101, 102, 103, 104, 105, 106}, 0)
	identity := predictorStub(func(v FeatureVector) (float64, error) {
		return v.Lag1, nil
	})

	forecasts, err := Forecast(context.Background(), features, identity, 5)
	require.NoError(t, err)
	require.Len(t, forecasts, 5)

	lastDate := features[len(features)-1].Date
	for i, point := range forecasts {
		assert.Equal(t, lastDate.AddDate(0, 0, i+1), point.Date)
	}
}

func TestForecastLagResolution(t *testing.T) {
	// Feature day indices run 0..6 with prices 100..106. The synthetic day
	// index advances by the step number each iteration, so it quickly
	// outruns the table and lag3 falls back to lag1.
	features := featureTable([]float64{100, 101, 102, 103, 104, 105, 106}, 0)

	var captured []FeatureVector
	recorder := predictorStub(func(v FeatureVector) (float64, error) {
		captured = append(captured, v)
		return v.Lag1 + 10, nil
	})

	forecasts, err := Forecast(context.Background(), features, recorder, 3)
	require.NoError(t, err)
	require.Len(t, captured, 3)

	// Step 1: index 6+1=7, lag3 looks up index 4.
	assert.Equal(t, 106.0, captured[0].Lag1)
	assert.Equal(t, 104.0, captured[0].Lag3)

	// Step 2: index 7+2=9, lag3 looks up index 6.
	assert.Equal(t, 116.0, captured[1].Lag1)
	assert.Equal(t, 106.0, captured[1].Lag3)

	// Step 3: index 9+3=12, lag3 looks up index 9 which no longer exists,
	// so it falls back to lag1.
	assert.Equal(t, 126.0, captured[2].Lag1)
	assert.Equal(t, 126.0, captured[2].Lag3)

	// The predicted path itself feeds the next step.
	assert.Equal(t, 116.0, forecasts[0].PredictedPrice)
	assert.Equal(t, 126.0, forecasts[1].PredictedPrice)
	assert.Equal(t, 136.0, forecasts[2].PredictedPrice)
}

func TestForecastRollingMeanFollowsPath(t *testing.T) {
	features := featureTable([]float64{100, 100, 100, 100, 100, 100, 100}, 0)

	var captured []FeatureVector
	recorder := predictorStub(func(v FeatureVector) (float64, error) {
		captured = append(captured, v)
		return v.Lag1 + 7, nil
	})

	_, err := Forecast(context.Background(), features, recorder, 8)
	require.NoError(t, err)
	require.Len(t, captured, 8)

	// Step 1: no predictions yet, the rolling mean is just lag1.
	assert.InDelta(t, 100.0, captured[0].RollingAvg, 1e-9)

	// Step 2: lag1 (107) averaged with one produced prediction (107).
	assert.InDelta(t, 107.0, captured[1].RollingAvg, 1e-9)

	// Step 3: lag1 (114) with predictions 107 and 114.
	assert.InDelta(t, (114.0+107.0+114.0)/3, captured[2].RollingAvg, 1e-9)

	// Step 8: the window holds lag1 plus only the last six predictions.
	// lag1 = 100 + 7*7 = 149, predictions 114..149 step 7.
	expected := (149.0 + 114 + 121 + 128 + 135 + 142 + 149) / 7
	assert.InDelta(t, expected, captured[7].RollingAvg, 1e-9)
}

func TestForecastDeterministic(t *testing.T) {
	features := featureTable([]float64{50, 52, 51, 53, 55, 54, 56}, 0)
	model := predictorStub(func(v FeatureVector) (float64, error) {
		return 0.5*v.Lag1 + 0.3*v.Lag3 + 0.2*v.RollingAvg, nil
	})

	first, err := Forecast(context.Background(), features, model, 30)
	require.NoError(t, err)

	second, err := Forecast(context.Background(), features, model, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestForecastPredictError(t *testing.T) {
	features := featureTable([]float64{10, 11, 12, 13, 14, 15, 16}, 0)
	failing := predictorStub(func(v FeatureVector) (float64, error) {
		return 0, errors.New("artifact corrupted")
	})

	_, err := Forecast(context.Background(), features, failing, 5)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "predicting day 1")
}

func TestForecastCancelledContext(t *testing.T) {
	features := featureTable([]float64{10, 11, 12, 13, 14, 15, 16}, 0)
	identity := predictorStub(func(v FeatureVector) (float64, error) {
		return v.Lag1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Forecast(ctx, features, identity, 90)

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForecastHorizonHonored(t *testing.T) {
	features := featureTable([]float64{10, 11, 12, 13, 14, 15, 16}, 0)
	identity := predictorStub(func(v FeatureVector) (float64, error) {
		return v.Lag1, nil
	})

	for _, horizon := range []int{1, 7, 90} {
		forecasts, err := Forecast(context.Background(), features, identity, horizon)
		require.NoError(t, err)
		assert.Len(t, forecasts, horizon)
	}

	start := time.Now()
	_, err := Forecast(context.Background(), features, identity, 0)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
