package modelstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluzora/crop-price-api/internal/usecases/forecasting"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	writeArtifact(t, dir, "carrot_linear.json", `{
		"algorithm": "linear",
		"intercept": 2.5,
		"weights": {"lag1": 0.5, "lag3": 0.3, "rolling_avg": 0.2}
	}`)

	model, err := store.Load("carrot_linear.json")
	require.NoError(t, err)

	predicted, err := model.Predict(forecasting.FeatureVector{
		Lag1:       100,
		Lag3:       90,
		RollingAvg: 95,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.5+50+27+19, predicted, 1e-9)
}

func TestStoreLoadAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	store := New("some/other/dir")

	writeArtifact(t, dir, "model.json", `{"algorithm": "linear", "intercept": 1}`)

	model, err := store.Load(filepath.Join(dir, "model.json"))
	require.NoError(t, err)

	predicted, err := model.Predict(forecasting.FeatureVector{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, predicted)
}

func TestStoreLoadFailures(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	writeArtifact(t, dir, "broken.json", `{not json`)
	writeArtifact(t, dir, "exotic.json", `{"algorithm": "gradient_boosting"}`)

	tests := []struct {
		name     string
		artifact string
	}{
		{name: "missing file", artifact: "nope.json"},
		{name: "unparsable content", artifact: "broken.json"},
		{name: "unknown algorithm", artifact: "exotic.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Load(tt.artifact)

			require.Error(t, err)
			assert.ErrorIs(t, err, forecasting.ErrMissingArtifact)
		})
	}
}
