package forecasting

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/bluzora/crop-price-api/internal/domain"
)

// Evaluate compares realized prices against predictions and returns the
// regression quality metrics by value. Each call computes a fresh result;
// callers that want a running history append to their own collection.
func Evaluate(actual, predicted []float64) (domain.EvaluationMetrics, error) {
	if len(actual) == 0 || len(predicted) == 0 {
		return domain.EvaluationMetrics{}, errors.New("no observations to evaluate")
	}
	if len(actual) != len(predicted) {
		return domain.EvaluationMetrics{}, errors.Errorf(
			"mismatched lengths: %d actual vs %d predicted", len(actual), len(predicted))
	}

	n := float64(len(actual))

	var sumSquaredErr, sumAbsPctErr, actualSum float64
	for i := range actual {
		diff := actual[i] - predicted[i]
		sumSquaredErr += diff * diff
		if actual[i] != 0 {
			sumAbsPctErr += math.Abs(diff / actual[i])
		}
		actualSum += actual[i]
	}

	mse := sumSquaredErr / n
	actualMean := actualSum / n

	var totalSquares float64
	for _, a := range actual {
		d := a - actualMean
		totalSquares += d * d
	}

	// R² is 0 when the actuals have no variance to explain.
	r2 := 0.0
	if totalSquares > 0 {
		r2 = 1 - sumSquaredErr/totalSquares
	}

	return domain.EvaluationMetrics{
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		R2:   r2,
		MAPE: sumAbsPctErr / n,
		MAD:  medianAbsDeviation(predicted),
	}, nil
}

// medianAbsDeviation is the median absolute deviation of the predictions
// centered at their mean.
func medianAbsDeviation(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	deviations := make([]float64, len(values))
	for i, v := range values {
		deviations[i] = math.Abs(v - mean)
	}
	sort.Float64s(deviations)

	mid := len(deviations) / 2
	if len(deviations)%2 == 1 {
		return deviations[mid]
	}
	return (deviations[mid-1] + deviations[mid]) / 2
}
