package modelstore

import (
	"github.com/bluzora/crop-price-api/internal/usecases/forecasting"
)

// linearModel is a fitted linear regression over the three engineered
// features. Deterministic by construction.
type linearModel struct {
	intercept  float64
	lag1       float64
	lag3       float64
	rollingAvg float64
}

func (m *linearModel) Predict(v forecasting.FeatureVector) (float64, error) {
	return m.intercept +
		m.lag1*v.Lag1 +
		m.lag3*v.Lag3 +
		m.rollingAvg*v.RollingAvg, nil
}
