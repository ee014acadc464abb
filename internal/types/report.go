package types

// ExplanationReport is the write-once record assembled for one candidate per
// analysis run. Every value is computed from a single ScoreVector snapshot;
// the report is never mutated after construction.
type ExplanationReport struct {
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name,omitempty"`

	Scores    ScoreVector `json:"scores"`
	Composite float64     `json:"composite_score"`

	Attributions []Attribution   `json:"attributions"`
	Waterfall    []WaterfallStep `json:"waterfall"`

	TopMatches []Match    `json:"top_matches"`
	SkillGaps  []SkillGap `json:"skill_gaps"`

	Confidence ConfidenceBand `json:"confidence"`
	Variance   float64        `json:"score_variance"`

	Counterfactuals []Counterfactual `json:"counterfactuals"`

	Decision Decision `json:"decision"`
}
