package types

// RankedCandidate is one row of the batch ranking.
type RankedCandidate struct {
	CandidateID   string  `json:"candidate_id"`
	CandidateName string  `json:"candidate_name,omitempty"`
	Composite     float64 `json:"composite_score"`
	Action        Action  `json:"action"`
	Rank          int     `json:"rank"`
	Tier          string  `json:"tier"`
}

// Ranking is the batch-level ordering plus the per-action summary histogram.
// Failed candidates are excluded from Ranked and counted separately.
type Ranking struct {
	Ranked       []RankedCandidate `json:"ranked"`
	ActionCounts map[Action]int    `json:"action_counts"`
	Failed       int               `json:"failed"`
}
