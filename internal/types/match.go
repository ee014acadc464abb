package types

// Match pairs one job requirement with its best-matching resume sentence.
// A requirement has at most one Match; a sentence may appear in several.
type Match struct {
	Requirement      string  `json:"requirement"`
	RequirementIndex int     `json:"requirement_index"`
	Sentence         string  `json:"sentence"`
	SentenceIndex    int     `json:"sentence_index"`
	Similarity       float64 `json:"similarity"`
	Matched          bool    `json:"matched"`
}

// SkillGap is a job requirement with no resume sentence above the match
// threshold. BestSimilarity records how close the nearest sentence came
// (zero when the candidate had no sentences at all).
type SkillGap struct {
	Requirement      string  `json:"requirement"`
	RequirementIndex int     `json:"requirement_index"`
	BestSimilarity   float64 `json:"best_similarity"`
}
