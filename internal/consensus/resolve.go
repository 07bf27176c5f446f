package consensus

import (
	"strings"
)

// trackedFields are voted on for every group, in this order. id is handled
// separately because it may be synthesized.
var trackedFields = []string{"title", "role", "year", "director", "type"}

// resolveGroup fuses one match group into a single record plus per-field
// confidences. For each field the non-empty values across members are counted
// case-insensitively; the majority key wins, ties break to the first-seen
// key, and the resolved value is the original casing of the winning key's
// first occurrence. Confidence is the winning count over the total non-empty
// count. Fields nobody supplied are omitted from both record and map.
func resolveGroup(g MatchGroup) (Record, map[string]float64) {
	rec := Record{AttachedMedia: []string{}}
	conf := make(map[string]float64, len(trackedFields)+2)

	for _, field := range trackedFields {
		value, score, ok := vote(collect(g, field))
		if !ok {
			continue
		}
		rec.setField(field, value)
		conf[field] = score
	}

	if value, score, ok := vote(collect(g, "id")); ok {
		rec.ID = value
		conf["id"] = score
	} else {
		// No provider supplied an id: derive one from the resolved fields so
		// the same fused credit gets the same id on every run.
		key := strings.Join([]string{rec.Title, rec.Role, rec.Year, rec.Director, rec.Type}, "|")
		rec.ID = hashID(key)
		conf["id"] = 1.0
	}

	// Nothing votes on attached media; the placeholder is definitionally empty.
	conf["attachedMedia"] = 1.0

	return rec, conf
}

// collect gathers the non-empty values of one field across group members, in
// member order.
func collect(g MatchGroup, field string) []string {
	var values []string
	for _, m := range g.Members {
		if v := m.Field(field); strings.TrimSpace(v) != "" {
			values = append(values, v)
		}
	}
	return values
}

// vote tallies values by case-insensitive trimmed key and returns the
// majority value in its original casing, with its share of the total as the
// confidence. Ties resolve to whichever key appeared first in the collected
// list. ok is false when there was nothing to vote on.
func vote(values []string) (value string, confidence float64, ok bool) {
	if len(values) == 0 {
		return "", 0, false
	}

	counts := make(map[string]int, len(values))
	first := make(map[string]string, len(values))
	var order []string
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if _, seen := counts[key]; !seen {
			order = append(order, key)
			first[key] = v
		}
		counts[key]++
	}

	best := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[best] {
			best = key
		}
	}

	return first[best], float64(counts[best]) / float64(len(values)), true
}
