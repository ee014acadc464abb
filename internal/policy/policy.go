// Package policy implements the deterministic hiring decision as a
// first-match decision list: an ordered sequence of (predicate, action,
// rationale) rules evaluated top to bottom. Rule order is a semantic
// contract, not an implementation detail; the composite score never decides
// the action and the two may legitimately disagree.
package policy

import (
	"fmt"

	"github.com/jonathan/hiring-agent/internal/config"
	"github.com/jonathan/hiring-agent/internal/types"
)

// Rule is one entry of the decision list. The rationale is bound to the
// literal threshold values the predicate tested.
type Rule struct {
	Name      string
	Action    types.Action
	matches   func(v types.ScoreVector) bool
	rationale func(v types.ScoreVector) string
}

// DecisionList is the ordered rule set for one set of thresholds.
type DecisionList struct {
	rules []Rule
}

// New builds the decision list from validated thresholds.
func New(t config.PolicyThresholds) *DecisionList {
	return &DecisionList{rules: []Rule{
		{
			// Hard gate: a missing required capability vetoes every
			// other signal, however strong.
			Name:   "missing_required_language",
			Action: types.ActionReject,
			matches: func(v types.ScoreVector) bool {
				return v.ExecutionLanguage == 0
			},
			rationale: func(v types.ScoreVector) string {
				return "required execution language is absent from the resume (execution_language = 0)"
			},
		},
		{
			Name:   "incompatible_domain",
			Action: types.ActionReject,
			matches: func(v types.ScoreVector) bool {
				return v.DomainCompatibility < t.RejectDomainBelow
			},
			rationale: func(v types.ScoreVector) string {
				return fmt.Sprintf("domain_compatibility %.3f is below the rejection floor %.2f (wrong tech stack)",
					v.DomainCompatibility, t.RejectDomainBelow)
			},
		},
		{
			Name:   "fast_track",
			Action: types.ActionSelectFastTrack,
			matches: func(v types.ScoreVector) bool {
				return v.RoleFit >= t.FastTrackRoleFit && v.CapabilityStrength >= t.FastTrackCapability
			},
			rationale: func(v types.ScoreVector) string {
				return fmt.Sprintf("role_fit %.3f >= %.2f and capability_strength %.3f >= %.2f",
					v.RoleFit, t.FastTrackRoleFit, v.CapabilityStrength, t.FastTrackCapability)
			},
		},
		{
			Name:   "strong_role_fit",
			Action: types.ActionScheduleInterview,
			matches: func(v types.ScoreVector) bool {
				return v.RoleFit >= t.InterviewRoleFit
			},
			rationale: func(v types.ScoreVector) string {
				return fmt.Sprintf("role_fit %.3f >= %.2f", v.RoleFit, t.InterviewRoleFit)
			},
		},
		{
			Name:   "high_growth",
			Action: types.ActionScheduleInterview,
			matches: func(v types.ScoreVector) bool {
				return v.GrowthPotential >= t.InterviewGrowth && v.DomainCompatibility >= t.InterviewGrowthDomain
			},
			rationale: func(v types.ScoreVector) string {
				return fmt.Sprintf("growth_potential %.3f >= %.2f with domain_compatibility %.3f >= %.2f",
					v.GrowthPotential, t.InterviewGrowth, v.DomainCompatibility, t.InterviewGrowthDomain)
			},
		},
		{
			// Catches domain specialists whose direct role matches are
			// weak, e.g. an ML engineer against a Python posting.
			Name:   "domain_specialist",
			Action: types.ActionScheduleInterview,
			matches: func(v types.ScoreVector) bool {
				return v.DomainCompatibility >= t.SpecialistDomain && v.CapabilityStrength >= t.SpecialistCapability
			},
			rationale: func(v types.ScoreVector) string {
				return fmt.Sprintf("domain_compatibility %.3f >= %.2f with capability_strength %.3f >= %.2f",
					v.DomainCompatibility, t.SpecialistDomain, v.CapabilityStrength, t.SpecialistCapability)
			},
		},
		{
			Name:   "promising_pool",
			Action: types.ActionPool,
			matches: func(v types.ScoreVector) bool {
				return v.DomainCompatibility >= t.PoolDomain &&
					(v.CapabilityStrength >= t.PoolCapability || v.GrowthPotential >= t.PoolGrowth)
			},
			rationale: func(v types.ScoreVector) string {
				return fmt.Sprintf("domain_compatibility %.3f >= %.2f with capability_strength %.3f >= %.2f or growth_potential %.3f >= %.2f",
					v.DomainCompatibility, t.PoolDomain, v.CapabilityStrength, t.PoolCapability, v.GrowthPotential, t.PoolGrowth)
			},
		},
		{
			// Terminal rule: always matches, so the policy is a total
			// function over the score space.
			Name:   "default_pool",
			Action: types.ActionPool,
			matches: func(v types.ScoreVector) bool {
				return true
			},
			rationale: func(v types.ScoreVector) string {
				return "no stronger rule matched; held in the talent pool"
			},
		},
	}}
}

// Decide evaluates the rules in order and returns the first match.
// Evaluation short-circuits; exactly one rule always fires.
func (d *DecisionList) Decide(v types.ScoreVector) types.Decision {
	for _, rule := range d.rules {
		if rule.matches(v) {
			return types.Decision{
				Action:    rule.Action,
				Rule:      rule.Name,
				Rationale: rule.rationale(v),
			}
		}
	}
	// Unreachable: the terminal rule matches everything.
	panic("decision list has no matching rule")
}

// RuleNames returns the rule identifiers in evaluation order.
func (d *DecisionList) RuleNames() []string {
	names := make([]string, len(d.rules))
	for i, rule := range d.rules {
		names[i] = rule.Name
	}
	return names
}
