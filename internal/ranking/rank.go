// Package ranking orders evaluated candidates by composite score and
// produces the batch-level summary.
package ranking

import (
	"sort"

	"github.com/jonathan/hiring-agent/internal/config"
	"github.com/jonathan/hiring-agent/internal/types"
)

// Entry is one successfully evaluated candidate, in batch input order.
type Entry struct {
	CandidateID   string
	CandidateName string
	Composite     float64
	Action        types.Action
}

// Rank sorts entries descending by composite score, assigns 1-based ranks
// and qualitative tiers, and counts candidates per action. The sort is
// stable: candidates with identical composite scores keep their input order,
// so reruns over the same batch produce identical rankings.
func Rank(entries []Entry, cfg *config.Config) *types.Ranking {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Composite > ordered[j].Composite
	})

	counts := make(map[types.Action]int, len(types.Actions))
	for _, action := range types.Actions {
		counts[action] = 0
	}

	ranked := make([]types.RankedCandidate, len(ordered))
	for i, entry := range ordered {
		ranked[i] = types.RankedCandidate{
			CandidateID:   entry.CandidateID,
			CandidateName: entry.CandidateName,
			Composite:     entry.Composite,
			Action:        entry.Action,
			Rank:          i + 1,
			Tier:          cfg.Tier(entry.Composite),
		}
		counts[entry.Action]++
	}

	return &types.Ranking{
		Ranked:       ranked,
		ActionCounts: counts,
	}
}
