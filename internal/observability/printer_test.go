package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/hiring-agent/internal/types"
)

func sampleReport() *types.ExplanationReport {
	return &types.ExplanationReport{
		CandidateID:   "cand-1",
		CandidateName: "Jordan Diaz",
		Composite:     0.8210,
		Waterfall: []types.WaterfallStep{
			{Feature: "role_fit", Contribution: 0.2625, RunningTotal: 0.2625},
			{Feature: "domain_compatibility", Contribution: 0.23, RunningTotal: 0.4925},
		},
		TopMatches: []types.Match{
			{Requirement: "python development", Sentence: "built python services", Similarity: 0.91, Matched: true},
		},
		SkillGaps: []types.SkillGap{
			{Requirement: "kubernetes operations", BestSimilarity: 0.31},
		},
		Confidence: types.ConfidenceHigh,
		Variance:   0.0006,
		Counterfactuals: []types.Counterfactual{
			{Feature: "role_fit", Delta: -0.15, Action: types.ActionScheduleInterview},
		},
		Decision: types.Decision{
			Action:    types.ActionSelectFastTrack,
			Rule:      "fast_track",
			Rationale: "role_fit and capability_strength cleared their bars",
		},
	}
}

func TestPrintExplanationReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExplanationReport(sampleReport())
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE EVALUATION")
	assert.Contains(t, output, "Jordan Diaz")
	assert.Contains(t, output, "SELECT_FAST_TRACK")
	assert.Contains(t, output, "fast_track")
	assert.Contains(t, output, "role_fit")
	assert.Contains(t, output, "kubernetes operations")
	assert.Contains(t, output, "HIGH")
	assert.Contains(t, output, "┌")
	assert.Contains(t, output, "└")
}

func TestPrintExplanationReport_StableDecision(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := sampleReport()
	report.Counterfactuals = nil
	p.PrintExplanationReport(report)

	assert.Contains(t, buf.String(), "No single-score change flips this decision")
}

func TestPrintExplanationReport_FallsBackToID(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := sampleReport()
	report.CandidateName = ""
	p.PrintExplanationReport(report)

	assert.Contains(t, buf.String(), "cand-1")
}

func TestPrintExplanationReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExplanationReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(&types.Ranking{
		Ranked: []types.RankedCandidate{
			{CandidateID: "cand-1", CandidateName: "Jordan Diaz", Composite: 0.8210, Action: types.ActionSelectFastTrack, Rank: 1, Tier: "Excellent"},
			{CandidateID: "cand-2", Composite: 0.3125, Action: types.ActionReject, Rank: 2, Tier: "Poor"},
		},
		ActionCounts: map[types.Action]int{
			types.ActionReject:            1,
			types.ActionPool:              0,
			types.ActionScheduleInterview: 0,
			types.ActionSelectFastTrack:   1,
		},
		Failed: 1,
	})
	output := buf.String()

	assert.Contains(t, output, "BATCH RANKING")
	assert.Contains(t, output, "Jordan Diaz")
	assert.Contains(t, output, "cand-2", "rows without a name fall back to the id")
	assert.Contains(t, output, "Excellent")
	assert.Contains(t, output, "Failed:")
	assert.Contains(t, output, "REJECT")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(nil)
	p.PrintRanking(&types.Ranking{})
	assert.Empty(t, buf.String())
}
