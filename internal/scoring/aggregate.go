// Package scoring validates ScoreVectors and aggregates them into the
// composite score together with its exact attribution decomposition.
package scoring

import (
	"github.com/jonathan/hiring-agent/internal/config"
	"github.com/jonathan/hiring-agent/internal/types"
)

// Evaluation is the aggregator output for one ScoreVector snapshot. The
// composite equals the sum of the attribution contributions exactly (they are
// accumulated in one pass), which is what distinguishes this decomposition
// from approximate attribution methods.
type Evaluation struct {
	Scores       types.ScoreVector
	Composite    float64
	Attributions []types.Attribution
	Waterfall    []types.WaterfallStep
}

// Aggregate validates the vector against its declared domains and computes
// the weighted composite, the attribution list, and the waterfall
// decomposition, all in the fixed presentation order (descending weight,
// starting from a 0.0 baseline).
func Aggregate(scores types.ScoreVector, weights config.Weights) (*Evaluation, error) {
	if err := scores.Validate(); err != nil {
		return nil, &DomainError{Cause: err}
	}

	eval := &Evaluation{
		Scores:       scores,
		Attributions: make([]types.Attribution, 0, len(types.PresentationOrder)),
		Waterfall:    make([]types.WaterfallStep, 0, len(types.PresentationOrder)),
	}

	for _, feature := range types.PresentationOrder {
		weight := weights.Of(feature)
		subScore := scores.Feature(feature)
		contribution := weight * subScore

		eval.Composite += contribution
		eval.Attributions = append(eval.Attributions, types.Attribution{
			Feature:      feature,
			Weight:       weight,
			SubScore:     subScore,
			Contribution: contribution,
		})
		eval.Waterfall = append(eval.Waterfall, types.WaterfallStep{
			Feature:      feature,
			Contribution: contribution,
			RunningTotal: eval.Composite,
		})
	}

	return eval, nil
}

// Composite computes just the weighted sum without building the attribution
// lists. The vector must already be validated.
func Composite(scores types.ScoreVector, weights config.Weights) float64 {
	total := 0.0
	for _, feature := range types.PresentationOrder {
		total += weights.Of(feature) * scores.Feature(feature)
	}
	return total
}
