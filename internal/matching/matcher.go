// Package matching computes cosine similarity between job-requirement and
// resume-sentence embeddings, producing ranked matches and skill gaps.
package matching

import (
	"math"
	"sort"

	"github.com/jonathan/hiring-agent/internal/types"
)

// CosineSimilarity returns dot(a,b) / (||a||*||b||). It is defined as 0 when
// either vector has zero norm or the dimensions disagree, so degenerate
// embeddings never divide by zero.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SimilarityMatrix computes the full N×M similarity matrix between
// requirement vectors and sentence vectors.
func SimilarityMatrix(reqVectors, sentVectors [][]float64) [][]float64 {
	matrix := make([][]float64, len(reqVectors))
	for i, req := range reqVectors {
		row := make([]float64, len(sentVectors))
		for j, sent := range sentVectors {
			row[j] = CosineSimilarity(req, sent)
		}
		matrix[i] = row
	}
	return matrix
}

// Result holds the matcher output for one candidate: matched requirements
// sorted by similarity descending, and the unmatched requirements as gaps.
type Result struct {
	Matches []types.Match
	Gaps    []types.SkillGap
}

// MatchRequirements pairs each requirement with its most similar sentence.
// Vectors are parallel to their text slices. A requirement whose best
// similarity is below threshold becomes a SkillGap. Equal maxima resolve to
// the first sentence in input order; floating-point ties are possible with
// identical embeddings, so the strict > comparison is load-bearing.
// Empty inputs are not an error: with no sentences every requirement is a gap.
func MatchRequirements(requirements []string, reqVectors [][]float64, sentences []string, sentVectors [][]float64, threshold float64) Result {
	var result Result

	if len(requirements) == 0 {
		return result
	}
	if len(sentences) == 0 {
		for i, req := range requirements {
			result.Gaps = append(result.Gaps, types.SkillGap{
				Requirement:      req,
				RequirementIndex: i,
			})
		}
		return result
	}

	matrix := SimilarityMatrix(reqVectors, sentVectors)
	for i, req := range requirements {
		bestIdx := 0
		bestSim := matrix[i][0]
		for j := 1; j < len(sentences); j++ {
			if matrix[i][j] > bestSim {
				bestSim = matrix[i][j]
				bestIdx = j
			}
		}

		if bestSim >= threshold {
			result.Matches = append(result.Matches, types.Match{
				Requirement:      req,
				RequirementIndex: i,
				Sentence:         sentences[bestIdx],
				SentenceIndex:    bestIdx,
				Similarity:       bestSim,
				Matched:          true,
			})
		} else {
			result.Gaps = append(result.Gaps, types.SkillGap{
				Requirement:      req,
				RequirementIndex: i,
				BestSimilarity:   bestSim,
			})
		}
	}

	// Strongest matches first; stable so equal similarities keep
	// requirement input order.
	sort.SliceStable(result.Matches, func(a, b int) bool {
		return result.Matches[a].Similarity > result.Matches[b].Similarity
	})

	return result
}

// TopK returns the k strongest matches for reporting. The input is already
// sorted by MatchRequirements.
func TopK(matches []types.Match, k int) []types.Match {
	if k < 0 {
		k = 0
	}
	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k]
}
