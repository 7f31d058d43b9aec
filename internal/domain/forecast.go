package domain

import "time"

// FeatureRow is a supervised-learning row derived from a crop series. It
// only exists where every lag and rolling column is defined, so the first
// six observations of any series never produce a row. DayIndex is the whole
// day offset from the first date of the series and is used as a monotonic
// ordinal only.
type FeatureRow struct {
	Date         time.Time
	AveragePrice float64
	Lag1         float64
	Lag3         float64
	RollingAvg7  float64
	DayIndex     int
}

// ForecastPoint is one day of the forward price path produced by the
// recursive forecaster. Persisted with an idempotent upsert keyed by
// (crop, predicted date).
type ForecastPoint struct {
	Date           time.Time `json:"date"`
	PredictedPrice float64   `json:"predicted_price"`
}

// ModelBinding maps a crop to its trained regression artifact. A crop
// without a binding is simply not forecastable.
type ModelBinding struct {
	CropID       string    `json:"crop_id"`
	CropName     string    `json:"crop_name"`
	ArtifactPath string    `json:"artifact_path"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SkippedCrop records why a crop was left out of a forecast run.
type SkippedCrop struct {
	CropID   string `json:"crop_id"`
	CropName string `json:"crop_name"`
	Reason   string `json:"reason"`
}

// ForecastRunResult is the outcome of one batch forecast run.
type ForecastRunResult struct {
	StartedAt   time.Time     `json:"started_at"`
	Duration    string        `json:"duration"`
	HorizonDays int           `json:"horizon_days"`
	Forecasted  []string      `json:"forecasted"`
	Skipped     []SkippedCrop `json:"skipped"`
}

// EvaluationMetrics are the regression quality measures computed when
// stored predictions are compared against realized prices. Each evaluation
// returns a fresh value; callers that want a history accumulate it
// themselves.
type EvaluationMetrics struct {
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2"`
	MAPE float64 `json:"mape"`
	MAD  float64 `json:"mad"`
}

// ForecastAccuracy reports how stored predictions fared on dates where the
// realized price is already known.
type ForecastAccuracy struct {
	CropID      string            `json:"crop_id"`
	CropName    string            `json:"crop_name"`
	MatchedDays int               `json:"matched_days"`
	Metrics     EvaluationMetrics `json:"metrics"`
}
