// Package types provides type definitions for the structured data exchanged
// between the scoring, policy, and explainability packages.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Feature names for the five sub-scores. These are the stable identifiers
// used in attributions, counterfactuals, and serialized reports.
const (
	FeatureRoleFit             = "role_fit"
	FeatureCapabilityStrength  = "capability_strength"
	FeatureGrowthPotential     = "growth_potential"
	FeatureDomainCompatibility = "domain_compatibility"
	FeatureExecutionLanguage   = "execution_language"
)

// PresentationOrder is the fixed feature order for attributions and the
// waterfall decomposition, matching descending weight.
var PresentationOrder = []string{
	FeatureRoleFit,
	FeatureDomainCompatibility,
	FeatureCapabilityStrength,
	FeatureExecutionLanguage,
	FeatureGrowthPotential,
}

// NumericFeatures are the continuous sub-scores. ExecutionLanguage is a
// binary flag and is excluded from variance and counterfactual perturbation.
var NumericFeatures = []string{
	FeatureRoleFit,
	FeatureCapabilityStrength,
	FeatureGrowthPotential,
	FeatureDomainCompatibility,
}

// ScoreVector holds the five sub-scores for one candidate. It is immutable
// once computed; perturbations operate on copies via WithFeature.
type ScoreVector struct {
	RoleFit             float64 `json:"role_fit" validate:"min=0,max=1"`
	CapabilityStrength  float64 `json:"capability_strength" validate:"min=0,max=1"`
	GrowthPotential     float64 `json:"growth_potential" validate:"min=0,max=1"`
	DomainCompatibility float64 `json:"domain_compatibility" validate:"min=0,max=1"`
	ExecutionLanguage   float64 `json:"execution_language" validate:"eq=0|eq=1"`
}

// Validate checks every sub-score against its declared domain.
// Out-of-domain values are a caller error; nothing is clamped.
func (v *ScoreVector) Validate() error {
	validate := validator.New()
	return validate.Struct(v)
}

// Feature returns the named sub-score value.
func (v ScoreVector) Feature(name string) float64 {
	switch name {
	case FeatureRoleFit:
		return v.RoleFit
	case FeatureCapabilityStrength:
		return v.CapabilityStrength
	case FeatureGrowthPotential:
		return v.GrowthPotential
	case FeatureDomainCompatibility:
		return v.DomainCompatibility
	case FeatureExecutionLanguage:
		return v.ExecutionLanguage
	}
	panic(fmt.Sprintf("unknown feature %q", name))
}

// WithFeature returns a copy of the vector with one sub-score replaced.
func (v ScoreVector) WithFeature(name string, value float64) ScoreVector {
	out := v
	switch name {
	case FeatureRoleFit:
		out.RoleFit = value
	case FeatureCapabilityStrength:
		out.CapabilityStrength = value
	case FeatureGrowthPotential:
		out.GrowthPotential = value
	case FeatureDomainCompatibility:
		out.DomainCompatibility = value
	case FeatureExecutionLanguage:
		out.ExecutionLanguage = value
	default:
		panic(fmt.Sprintf("unknown feature %q", name))
	}
	return out
}

// NumericValues returns the continuous sub-scores in NumericFeatures order.
func (v ScoreVector) NumericValues() []float64 {
	values := make([]float64, 0, len(NumericFeatures))
	for _, name := range NumericFeatures {
		values = append(values, v.Feature(name))
	}
	return values
}

// Attribution is one feature's share of the composite score.
// Contribution is exactly weight * sub-score.
type Attribution struct {
	Feature      string  `json:"feature"`
	Weight       float64 `json:"weight"`
	SubScore     float64 `json:"sub_score"`
	Contribution float64 `json:"contribution"`
}

// WaterfallStep is one row of the waterfall decomposition: the running
// cumulative total after the feature's contribution is added.
type WaterfallStep struct {
	Feature      string  `json:"feature"`
	Contribution float64 `json:"contribution"`
	RunningTotal float64 `json:"running_total"`
}
