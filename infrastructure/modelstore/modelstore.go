// Package modelstore loads trained regression artifacts from disk and
// exposes them through the forecasting Predictor capability. Artifacts are
// produced by the offline training pipeline; this service only consumes
// them.
package modelstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bluzora/crop-price-api/internal/usecases/forecasting"
)

// artifact is the on-disk JSON format of a trained model.
type artifact struct {
	Algorithm string             `json:"algorithm"`
	Intercept float64            `json:"intercept"`
	Weights   map[string]float64 `json:"weights"`
}

// Store resolves artifact references relative to a base directory.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Load reads and validates one model artifact. Any failure (missing file,
// unparsable content, unknown algorithm) comes back wrapped in
// forecasting.ErrMissingArtifact so the caller can skip the crop instead
// of failing the batch.
func (s *Store) Load(artifactPath string) (forecasting.Predictor, error) {
	path := artifactPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(forecasting.ErrMissingArtifact, "reading %s: %v", path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, errors.Wrapf(forecasting.ErrMissingArtifact, "parsing %s: %v", path, err)
	}

	switch art.Algorithm {
	case "linear":
		model := &linearModel{
			intercept:  art.Intercept,
			lag1:       art.Weights["lag1"],
			lag3:       art.Weights["lag3"],
			rollingAvg: art.Weights["rolling_avg"],
		}

		logrus.WithFields(logrus.Fields{
			"artifact":  path,
			"algorithm": art.Algorithm,
		}).Debug("model artifact loaded")

		return model, nil
	default:
		return nil, errors.Wrapf(forecasting.ErrMissingArtifact, "unknown algorithm %q in %s", art.Algorithm, path)
	}
}
