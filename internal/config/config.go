// Package config provides the engine configuration: scoring weights, policy
// thresholds, and batch settings. A Config is constructed once at startup,
// validated once, and passed by pointer into every pipeline invocation.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/hiring-agent/internal/types"
)

//go:embed engine_config.schema.json
var configSchema string

// weightSumTolerance bounds how far the weight sum may drift from 1.0.
const weightSumTolerance = 1e-9

// Weights are the fixed linear weights of the composite score.
// They must sum to 1.0; Validate enforces this at load time.
type Weights struct {
	RoleFit             float64 `json:"role_fit"`
	DomainCompatibility float64 `json:"domain_compatibility"`
	CapabilityStrength  float64 `json:"capability_strength"`
	ExecutionLanguage   float64 `json:"execution_language"`
	GrowthPotential     float64 `json:"growth_potential"`
}

// Of returns the weight for the named feature.
func (w Weights) Of(feature string) float64 {
	switch feature {
	case types.FeatureRoleFit:
		return w.RoleFit
	case types.FeatureDomainCompatibility:
		return w.DomainCompatibility
	case types.FeatureCapabilityStrength:
		return w.CapabilityStrength
	case types.FeatureExecutionLanguage:
		return w.ExecutionLanguage
	case types.FeatureGrowthPotential:
		return w.GrowthPotential
	}
	panic(fmt.Sprintf("unknown feature %q", feature))
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.RoleFit + w.DomainCompatibility + w.CapabilityStrength +
		w.ExecutionLanguage + w.GrowthPotential
}

// PolicyThresholds are the literal values the decision list tests.
// The rule order is structural and lives in the policy package; only the
// thresholds are configuration.
type PolicyThresholds struct {
	RejectDomainBelow     float64 `json:"reject_domain_below"`
	FastTrackRoleFit      float64 `json:"fast_track_role_fit"`
	FastTrackCapability   float64 `json:"fast_track_capability"`
	InterviewRoleFit      float64 `json:"interview_role_fit"`
	InterviewGrowth       float64 `json:"interview_growth"`
	InterviewGrowthDomain float64 `json:"interview_growth_domain"`
	SpecialistDomain      float64 `json:"specialist_domain"`
	SpecialistCapability  float64 `json:"specialist_capability"`
	PoolDomain            float64 `json:"pool_domain"`
	PoolCapability        float64 `json:"pool_capability"`
	PoolGrowth            float64 `json:"pool_growth"`
}

// TierBand maps a minimum composite score to a qualitative tier label.
type TierBand struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
}

// Config is the full engine configuration.
type Config struct {
	Weights        Weights          `json:"weights"`
	Policy         PolicyThresholds `json:"policy"`
	MatchThreshold float64          `json:"match_threshold"`
	TopK           int              `json:"top_k"`
	Tiers          []TierBand       `json:"tiers"`
	Concurrency    int              `json:"concurrency"`
	EmbedTimeoutS  int              `json:"embed_timeout_seconds"`
	EmbedModel     string           `json:"embed_model"`
	LogLevel       string           `json:"log_level"`
	LogFormat      string           `json:"log_format"`
}

// Default returns the documented default configuration.
func Default() *Config {
	return &Config{
		Weights: Weights{
			RoleFit:             0.35,
			DomainCompatibility: 0.25,
			CapabilityStrength:  0.20,
			ExecutionLanguage:   0.15,
			GrowthPotential:     0.05,
		},
		Policy: PolicyThresholds{
			RejectDomainBelow:     0.40,
			FastTrackRoleFit:      0.60,
			FastTrackCapability:   0.30,
			InterviewRoleFit:      0.50,
			InterviewGrowth:       0.70,
			InterviewGrowthDomain: 0.70,
			SpecialistDomain:      0.80,
			SpecialistCapability:  0.50,
			PoolDomain:            0.60,
			PoolCapability:        0.40,
			PoolGrowth:            0.60,
		},
		MatchThreshold: 0.55,
		TopK:           5,
		Tiers: []TierBand{
			{Name: "Excellent", Min: 0.8},
			{Name: "Good", Min: 0.6},
			{Name: "Fair", Min: 0.4},
			{Name: "Poor", Min: 0.0},
		},
		Concurrency:   4,
		EmbedTimeoutS: 30,
		EmbedModel:    "text-embedding-004",
		LogLevel:      "info",
		LogFormat:     "pretty",
	}
}

// Load reads a JSON config file, checks it against the embedded JSON Schema,
// and applies it on top of the defaults. The returned Config has already
// passed Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run schema validation: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, &ValidationError{Field: first.Field(), Message: first.Description()}
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EmbedTimeout returns the per-call embedding timeout as a duration.
func (c *Config) EmbedTimeout() time.Duration {
	return time.Duration(c.EmbedTimeoutS) * time.Second
}

// Validate enforces the process-wide invariants: weights sum to 1.0 within
// tolerance, thresholds lie in [0,1], and tier bands are strictly descending.
// It runs once at construction, never per request.
func (c *Config) Validate() error {
	if diff := math.Abs(c.Weights.Sum() - 1.0); diff > weightSumTolerance {
		return &ValidationError{
			Field:   "weights",
			Message: fmt.Sprintf("weights must sum to 1.0, got %.12f", c.Weights.Sum()),
		}
	}
	for _, feature := range types.PresentationOrder {
		if w := c.Weights.Of(feature); w < 0 || w > 1 {
			return &ValidationError{
				Field:   "weights." + feature,
				Message: fmt.Sprintf("weight must be in [0,1], got %v", w),
			}
		}
	}

	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return &ValidationError{Field: "match_threshold", Message: "must be in [0,1]"}
	}
	if c.TopK < 1 {
		return &ValidationError{Field: "top_k", Message: "must be at least 1"}
	}
	if c.Concurrency < 1 {
		return &ValidationError{Field: "concurrency", Message: "must be at least 1"}
	}
	if c.EmbedTimeoutS < 1 {
		return &ValidationError{Field: "embed_timeout_seconds", Message: "must be at least 1"}
	}

	if len(c.Tiers) == 0 {
		return &ValidationError{Field: "tiers", Message: "at least one tier band is required"}
	}
	for i, tier := range c.Tiers {
		if tier.Name == "" {
			return &ValidationError{Field: "tiers", Message: "tier name must not be empty"}
		}
		if tier.Min < 0 || tier.Min > 1 {
			return &ValidationError{Field: "tiers", Message: "tier minimum must be in [0,1]"}
		}
		if i > 0 && tier.Min >= c.Tiers[i-1].Min {
			return &ValidationError{Field: "tiers", Message: "tier bands must be strictly descending"}
		}
	}
	if last := c.Tiers[len(c.Tiers)-1]; last.Min != 0 {
		return &ValidationError{Field: "tiers", Message: "the last tier band must start at 0 so every score has a tier"}
	}

	return nil
}

// Tier returns the qualitative label for a composite score.
func (c *Config) Tier(composite float64) string {
	for _, tier := range c.Tiers {
		if composite >= tier.Min {
			return tier.Name
		}
	}
	// Unreachable once Validate has run; the last band starts at 0.
	return c.Tiers[len(c.Tiers)-1].Name
}
