package consensus

import (
	"github.com/sells-group/consensus-cli/internal/artifact"
)

// DefaultSimilarityThreshold is the Jaccard score at or above which two
// titles are considered the same credit.
const DefaultSimilarityThreshold = 0.8

// groupRecords clusters records describing the same credit. Single greedy
// pass in input order: each record is compared against the representative of
// every existing group in creation order, and joins the first group whose
// representative title scores at or above the threshold; otherwise it starts
// a new group. Deterministic for a fixed input ordering.
//
// This is an approximate heuristic. Two providers phrasing the same credit
// very differently may fail to merge; that is an accepted limitation. The
// strict generalization is union-find over an all-pairs similarity graph,
// which trades away the input-order determinism this pass guarantees.
func groupRecords(records []artifact.RawRecord, threshold float64) []MatchGroup {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	var groups []MatchGroup
	for _, r := range records {
		tokens := tokenSet(normalizeTitle(r.Title))
		placed := false
		for i := range groups {
			if similarity(tokens, groups[i].repTokens) >= threshold {
				groups[i].Members = append(groups[i].Members, r)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, MatchGroup{
				Members:   []artifact.RawRecord{r},
				repTokens: tokens,
			})
		}
	}
	return groups
}
