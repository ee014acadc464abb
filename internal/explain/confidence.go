// Package explain produces the explainability artifacts for one evaluated
// candidate: the confidence band, the counterfactual set, and the assembled
// ExplanationReport.
package explain

import "github.com/jonathan/hiring-agent/internal/types"

// Variance band boundaries. Closed-open intervals: a boundary value belongs
// to the lower-variance band.
const (
	highVarianceBelow   = 0.05
	mediumVarianceBelow = 0.15
)

// EstimateConfidence returns the confidence band and the population variance
// of the given sub-scores. The input is the continuous sub-scores only;
// variance over the binary language flag is not meaningful here. This is a
// signal-agreement heuristic, not a statistical confidence interval.
func EstimateConfidence(values []float64) (types.ConfidenceBand, float64) {
	if len(values) == 0 {
		return types.ConfidenceHigh, 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))

	switch {
	case variance < highVarianceBelow:
		return types.ConfidenceHigh, variance
	case variance < mediumVarianceBelow:
		return types.ConfidenceMedium, variance
	default:
		return types.ConfidenceLow, variance
	}
}
