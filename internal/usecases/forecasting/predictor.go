package forecasting

import "github.com/pkg/errors"

// FeatureVector carries the three regressors a trained model consumes.
// The day index and date are bookkeeping columns and are never passed to
// the model.
type FeatureVector struct {
	Lag1       float64
	Lag3       float64
	RollingAvg float64
}

// Predictor is the only capability required from a trained regression
// model. Implementations must be deterministic for identical inputs within
// one run; any regression satisfying this interface is substitutable.
type Predictor interface {
	Predict(features FeatureVector) (float64, error)
}

// ModelLoader resolves a model artifact reference into a usable Predictor.
type ModelLoader interface {
	Load(artifactPath string) (Predictor, error)
}

var (
	// ErrInsufficientData marks a series too short to engineer a single
	// feature row. Callers report it as "insufficient data" rather than
	// treating an empty forecast as success.
	ErrInsufficientData = errors.New("insufficient data to build features")

	// ErrMissingArtifact marks a model binding whose artifact cannot be
	// loaded. The crop is skipped and the batch continues.
	ErrMissingArtifact = errors.New("model artifact unavailable")
)
