package explain

import (
	"github.com/jonathan/hiring-agent/internal/matching"
	"github.com/jonathan/hiring-agent/internal/scoring"
	"github.com/jonathan/hiring-agent/internal/types"
)

// ReportInputs carries the upstream outputs the composer assembles. All of
// them must come from the same ScoreVector snapshot.
type ReportInputs struct {
	CandidateID   string
	CandidateName string

	Evaluation *scoring.Evaluation
	Matches    []types.Match
	Gaps       []types.SkillGap
	TopK       int

	Confidence      types.ConfidenceBand
	Variance        float64
	Counterfactuals []types.Counterfactual
	Decision        types.Decision
}

// Compose assembles the write-once ExplanationReport. It is pure
// aggregation: nothing is recomputed or re-derived, so the composite, the
// waterfall, and the counterfactuals all reflect the same inputs.
func Compose(in ReportInputs) *types.ExplanationReport {
	return &types.ExplanationReport{
		CandidateID:     in.CandidateID,
		CandidateName:   in.CandidateName,
		Scores:          in.Evaluation.Scores,
		Composite:       in.Evaluation.Composite,
		Attributions:    in.Evaluation.Attributions,
		Waterfall:       in.Evaluation.Waterfall,
		TopMatches:      matching.TopK(in.Matches, in.TopK),
		SkillGaps:       in.Gaps,
		Confidence:      in.Confidence,
		Variance:        in.Variance,
		Counterfactuals: in.Counterfactuals,
		Decision:        in.Decision,
	}
}
