package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluzora/crop-price-api/internal/domain"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		actual    []float64
		predicted []float64
		hasError  bool
		validate  func(t *testing.T, m domain.EvaluationMetrics)
	}{
		{
			name:      "empty inputs are an error",
			actual:    nil,
			predicted: nil,
			hasError:  true,
		},
		{
			name:      "mismatched lengths are an error",
			actual:    []float64{1, 2, 3},
			predicted: []float64{1, 2},
			hasError:  true,
		},
		{
			name:      "perfect prediction",
			actual:    []float64{10, 20, 30},
			predicted: []float64{10, 20, 30},
			validate: func(t *testing.T, m domain.EvaluationMetrics) {
				assert.Equal(t, 0.0, m.MSE)
				assert.Equal(t, 0.0, m.RMSE)
				assert.Equal(t, 1.0, m.R2)
				assert.Equal(t, 0.0, m.MAPE)
			},
		},
		{
			name:      "known residuals",
			actual:    []float64{10, 20},
			predicted: []float64{12, 18},
			validate: func(t *testing.T, m domain.EvaluationMetrics) {
				assert.InDelta(t, 4.0, m.MSE, 1e-9)
				assert.InDelta(t, 2.0, m.RMSE, 1e-9)
				assert.InDelta(t, 0.84, m.R2, 1e-9)
				assert.InDelta(t, 0.15, m.MAPE, 1e-9)
				assert.InDelta(t, 3.0, m.MAD, 1e-9)
			},
		},
		{
			name:      "constant actuals have no variance to explain",
			actual:    []float64{5, 5, 5},
			predicted: []float64{4, 5, 6},
			validate: func(t *testing.T, m domain.EvaluationMetrics) {
				assert.Equal(t, 0.0, m.R2)
				assert.InDelta(t, 2.0/3, m.MSE, 1e-9)
			},
		},
		{
			name:      "zero actuals are skipped in MAPE",
			actual:    []float64{0, 10},
			predicted: []float64{1, 11},
			validate: func(t *testing.T, m domain.EvaluationMetrics) {
				// Only the non-zero term contributes, still divided by n.
				assert.InDelta(t, 0.05, m.MAPE, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics, err := Evaluate(tt.actual, tt.predicted)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, metrics)
			}
		})
	}
}

func TestEvaluateReturnsFreshValues(t *testing.T) {
	first, err := Evaluate([]float64{10, 20}, []float64{12, 18})
	require.NoError(t, err)

	second, err := Evaluate([]float64{10, 20}, []float64{10, 20})
	require.NoError(t, err)

	// Each call stands alone; an earlier evaluation never leaks into a
	// later one.
	assert.InDelta(t, 4.0, first.MSE, 1e-9)
	assert.Equal(t, 0.0, second.MSE)
}

func TestMedianAbsDeviation(t *testing.T) {
	// Odd count: deviations from mean 20 are [10, 0, 10], median 10.
	assert.InDelta(t, 10.0, medianAbsDeviation([]float64{10, 20, 30}), 1e-9)

	// Even count: deviations from mean 15 are [5, 5], averaged middle pair.
	assert.InDelta(t, 5.0, medianAbsDeviation([]float64{10, 20}), 1e-9)
}
