package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hiring-agent/internal/config"
	"github.com/jonathan/hiring-agent/internal/types"
)

func defaultList() *DecisionList {
	return New(config.Default().Policy)
}

func TestRuleOrder(t *testing.T) {
	assert.Equal(t, []string{
		"missing_required_language",
		"incompatible_domain",
		"fast_track",
		"strong_role_fit",
		"high_growth",
		"domain_specialist",
		"promising_pool",
		"default_pool",
	}, defaultList().RuleNames())
}

func TestDecide_MissingLanguageVetoesEverything(t *testing.T) {
	// Every other signal is excellent; the hard gate still rejects.
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.9,
		CapabilityStrength:  0.9,
		GrowthPotential:     0.9,
		DomainCompatibility: 0.9,
		ExecutionLanguage:   0,
	})

	assert.Equal(t, types.ActionReject, decision.Action)
	assert.Equal(t, "missing_required_language", decision.Rule)
	assert.NotEmpty(t, decision.Rationale)
}

func TestDecide_IncompatibleDomain(t *testing.T) {
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.9,
		CapabilityStrength:  0.9,
		GrowthPotential:     0.9,
		DomainCompatibility: 0.2,
		ExecutionLanguage:   1,
	})

	assert.Equal(t, types.ActionReject, decision.Action)
	assert.Equal(t, "incompatible_domain", decision.Rule)
}

func TestDecide_FastTrack(t *testing.T) {
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.75,
		CapabilityStrength:  0.68,
		GrowthPotential:     0.85,
		DomainCompatibility: 0.92,
		ExecutionLanguage:   1,
	})

	assert.Equal(t, types.ActionSelectFastTrack, decision.Action)
	assert.Equal(t, "fast_track", decision.Rule)
}

func TestDecide_StrongRoleFit(t *testing.T) {
	// Role fit clears the interview bar but not the fast-track one.
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.55,
		CapabilityStrength:  0.2,
		GrowthPotential:     0.1,
		DomainCompatibility: 0.5,
		ExecutionLanguage:   1,
	})

	assert.Equal(t, types.ActionScheduleInterview, decision.Action)
	assert.Equal(t, "strong_role_fit", decision.Rule)
}

func TestDecide_HighGrowth(t *testing.T) {
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.3,
		CapabilityStrength:  0.2,
		GrowthPotential:     0.75,
		DomainCompatibility: 0.75,
		ExecutionLanguage:   1,
	})

	assert.Equal(t, types.ActionScheduleInterview, decision.Action)
	assert.Equal(t, "high_growth", decision.Rule)
}

func TestDecide_DomainSpecialist(t *testing.T) {
	// Weak direct role matches, strong domain and capability.
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.3,
		CapabilityStrength:  0.55,
		GrowthPotential:     0.2,
		DomainCompatibility: 0.85,
		ExecutionLanguage:   1,
	})

	assert.Equal(t, types.ActionScheduleInterview, decision.Action)
	assert.Equal(t, "domain_specialist", decision.Rule)
}

func TestDecide_PromisingPool(t *testing.T) {
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.3,
		CapabilityStrength:  0.45,
		GrowthPotential:     0.2,
		DomainCompatibility: 0.65,
		ExecutionLanguage:   1,
	})

	assert.Equal(t, types.ActionPool, decision.Action)
	assert.Equal(t, "promising_pool", decision.Rule)
}

func TestDecide_DefaultPool(t *testing.T) {
	// Nothing stronger matches; the terminal rule holds the candidate.
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.1,
		CapabilityStrength:  0.1,
		GrowthPotential:     0.1,
		DomainCompatibility: 0.45,
		ExecutionLanguage:   1,
	})

	assert.Equal(t, types.ActionPool, decision.Action)
	assert.Equal(t, "default_pool", decision.Rule)
}

func TestDecide_FirstMatchWins(t *testing.T) {
	// This vector satisfies fast_track, strong_role_fit, high_growth, and
	// domain_specialist simultaneously; only the earliest rule may fire.
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.9,
		CapabilityStrength:  0.9,
		GrowthPotential:     0.9,
		DomainCompatibility: 0.9,
		ExecutionLanguage:   1,
	})

	assert.Equal(t, "fast_track", decision.Rule)
}

func TestDecide_Deterministic(t *testing.T) {
	list := defaultList()
	v := types.ScoreVector{
		RoleFit:             0.42,
		CapabilityStrength:  0.33,
		GrowthPotential:     0.61,
		DomainCompatibility: 0.58,
		ExecutionLanguage:   1,
	}

	first := list.Decide(v)
	second := list.Decide(v)
	assert.Equal(t, first, second)
}

func TestDecide_ThresholdBoundariesAreInclusive(t *testing.T) {
	decision := defaultList().Decide(types.ScoreVector{
		RoleFit:             0.60,
		CapabilityStrength:  0.30,
		GrowthPotential:     0,
		DomainCompatibility: 0.40,
		ExecutionLanguage:   1,
	})

	assert.Equal(t, "fast_track", decision.Rule, ">= comparisons: exact thresholds qualify")
}

func TestDecide_ActionInClosedSet(t *testing.T) {
	list := defaultList()
	grid := []float64{0, 0.25, 0.5, 0.75, 1}

	for _, role := range grid {
		for _, domain := range grid {
			for _, lang := range []float64{0, 1} {
				decision := list.Decide(types.ScoreVector{
					RoleFit:             role,
					CapabilityStrength:  0.5,
					GrowthPotential:     0.5,
					DomainCompatibility: domain,
					ExecutionLanguage:   lang,
				})
				require.Contains(t, types.Actions, decision.Action)
				require.NotEmpty(t, decision.Rule)
				require.NotEmpty(t, decision.Rationale)
			}
		}
	}
}
