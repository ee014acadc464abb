package explain

import (
	"math"
	"sort"

	"github.com/jonathan/hiring-agent/internal/policy"
	"github.com/jonathan/hiring-agent/internal/types"
)

// flipTolerance is how closely the bisection localizes a flip point.
const flipTolerance = 0.01

// Explore searches, for each continuous sub-score independently, for the
// minimal signed delta that changes the policy's action with all other
// sub-scores held fixed. The binary language flag is never perturbed.
//
// The domain boundaries 0.0 and 1.0 are evaluated first: if neither flips
// the action, the decision is stable under that feature and no
// counterfactual is reported, which is an expected outcome, not an error.
// When a boundary does flip, bisection narrows to the flip point within
// flipTolerance. Results carry at most one entry per feature (the smaller
// |delta| of the two directions) and are sorted by |delta| ascending so the
// most actionable change comes first.
func Explore(decisions *policy.DecisionList, scores types.ScoreVector) []types.Counterfactual {
	baseline := decisions.Decide(scores).Action

	var found []types.Counterfactual
	for _, feature := range types.NumericFeatures {
		current := scores.Feature(feature)
		actionAt := func(value float64) types.Action {
			return decisions.Decide(scores.WithFeature(feature, value)).Action
		}

		var best *types.Counterfactual
		for _, bound := range []float64{0.0, 1.0} {
			if bound == current {
				continue
			}
			if actionAt(bound) == baseline {
				continue
			}

			flip := bisect(actionAt, baseline, current, bound)
			candidate := types.Counterfactual{
				Feature: feature,
				Delta:   flip - current,
				Action:  actionAt(flip),
			}
			if best == nil || math.Abs(candidate.Delta) < math.Abs(best.Delta) {
				best = &candidate
			}
		}
		if best != nil {
			found = append(found, *best)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return math.Abs(found[i].Delta) < math.Abs(found[j].Delta)
	})
	return found
}

// bisect narrows [lo, hi] until it is shorter than flipTolerance, keeping
// the invariant that lo yields the baseline action and hi does not, then
// returns hi. The action is therefore guaranteed to differ at the returned
// value, which is what makes reported counterfactuals sound.
func bisect(actionAt func(float64) types.Action, baseline types.Action, lo, hi float64) float64 {
	for math.Abs(hi-lo) > flipTolerance {
		mid := (lo + hi) / 2
		if actionAt(mid) == baseline {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
