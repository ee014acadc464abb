package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0, cfg.Weights.Sum(), 1e-9)
}

func TestValidate_WeightSumDrift(t *testing.T) {
	cfg := Default()
	cfg.Weights.RoleFit = 0.36

	err := cfg.Validate()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "weights", vErr.Field)
}

func TestValidate_WeightSumTolerance(t *testing.T) {
	cfg := Default()
	// Drift far below the tolerance must pass.
	cfg.Weights.RoleFit = 0.35 + 1e-12
	cfg.Weights.GrowthPotential = 0.05 - 1e-12
	assert.NoError(t, cfg.Validate())
}

func TestValidate_TiersNotDescending(t *testing.T) {
	cfg := Default()
	cfg.Tiers = []TierBand{
		{Name: "Good", Min: 0.6},
		{Name: "Excellent", Min: 0.8},
		{Name: "Poor", Min: 0.0},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_LastTierMustStartAtZero(t *testing.T) {
	cfg := Default()
	cfg.Tiers = []TierBand{
		{Name: "Excellent", Min: 0.8},
		{Name: "Good", Min: 0.6},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MatchThresholdRange(t *testing.T) {
	cfg := Default()
	cfg.MatchThreshold = 1.5
	assert.Error(t, cfg.Validate())
}

func TestValidate_ConcurrencyFloor(t *testing.T) {
	cfg := Default()
	cfg.Concurrency = 0
	assert.Error(t, cfg.Validate())
}

func TestTierBoundaries(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Excellent", cfg.Tier(0.95))
	assert.Equal(t, "Excellent", cfg.Tier(0.8), "band minimum is inclusive")
	assert.Equal(t, "Good", cfg.Tier(0.79))
	assert.Equal(t, "Good", cfg.Tier(0.6))
	assert.Equal(t, "Fair", cfg.Tier(0.4))
	assert.Equal(t, "Poor", cfg.Tier(0.39))
	assert.Equal(t, "Poor", cfg.Tier(0.0))
}

func TestWeightsOf(t *testing.T) {
	w := Default().Weights
	assert.Equal(t, 0.35, w.Of("role_fit"))
	assert.Equal(t, 0.25, w.Of("domain_compatibility"))
	assert.Equal(t, 0.20, w.Of("capability_strength"))
	assert.Equal(t, 0.15, w.Of("execution_language"))
	assert.Equal(t, 0.05, w.Of("growth_potential"))
	assert.Panics(t, func() { w.Of("composite") })
}

func TestEmbedTimeout(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 30*time.Second, cfg.EmbedTimeout())
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_PartialOverridesKeepDefaults(t *testing.T) {
	path := writeConfigFile(t, `{
		"match_threshold": 0.7,
		"top_k": 3,
		"log_level": "debug"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.MatchThreshold)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched sections keep their defaults.
	assert.InDelta(t, 1.0, cfg.Weights.Sum(), 1e-9)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Len(t, cfg.Tiers, 4)
}

func TestLoad_SchemaRejectsOutOfRange(t *testing.T) {
	path := writeConfigFile(t, `{"match_threshold": 2.0}`)

	_, err := Load(path)
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestLoad_SchemaRejectsUnknownField(t *testing.T) {
	path := writeConfigFile(t, `{"match_treshold": 0.5}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsBadWeightSum(t *testing.T) {
	// Each weight is individually in range; only the sum invariant fails.
	path := writeConfigFile(t, `{
		"weights": {
			"role_fit": 0.5,
			"domain_compatibility": 0.5,
			"capability_strength": 0.5,
			"execution_language": 0.5,
			"growth_potential": 0.5
		}
	}`)

	_, err := Load(path)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "weights", vErr.Field)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "top_k", Message: "must be at least 1"}
	assert.Contains(t, err.Error(), "top_k")
	assert.Contains(t, err.Error(), "must be at least 1")

	bare := &ValidationError{Message: "broken"}
	assert.Contains(t, bare.Error(), "broken")
}
