// Package score grades a single extraction artifact against structural and
// completeness expectations. It runs on raw artifacts, independently of the
// consensus engine, and is a pure function of its input.
package score

import (
	"sort"

	"github.com/sells-group/consensus-cli/internal/artifact"
)

// requiredFields must be present as non-empty strings on every credit.
var requiredFields = []string{"title", "role"}

// optionalFields count toward completeness when non-empty.
var optionalFields = []string{"year", "director", "id", "type"}

// stringFields are the keys whose JSON value, when present, must be a string
// or a number (numbers are accepted because providers disagree on year
// encoding).
var stringFields = []string{"title", "role", "year", "director", "id", "type"}

// Weights controls the composition of the overall score. Zero-value weights
// fall back to equal weighting.
type Weights struct {
	Structural   float64 `yaml:"structural" mapstructure:"structural"`
	Completeness float64 `yaml:"completeness" mapstructure:"completeness"`
	Category     float64 `yaml:"category" mapstructure:"category"`
}

// Report holds all accuracy percentages for one artifact, 0-100.
type Report struct {
	Overall            float64  `json:"overall"`
	CategoryAssignment float64  `json:"categoryAssignment"`
	Completeness       float64  `json:"completeness"`
	StructuralValidity float64  `json:"structuralValidity"`
	MissingFields      []string `json:"missingFields"`
}

// Score grades one artifact. Absent optional data degrades the percentages
// but never errors; an artifact with no records scores zero across the board.
func Score(a *artifact.Artifact, w Weights) Report {
	records := allRecords(a)

	rep := Report{MissingFields: []string{}}
	if len(records) == 0 {
		return rep
	}

	missing := make(map[string]bool, len(requiredFields))
	validRecords := 0
	optionalFilled, optionalTotal := 0, 0
	categorized := 0

	for _, r := range records {
		if recordValid(r, missing) {
			validRecords++
		}

		for _, f := range optionalFields {
			optionalTotal++
			if r.Field(f) != "" {
				optionalFilled++
			}
		}

		if categoryTag(a, r) != "" {
			categorized++
		}
	}

	rep.StructuralValidity = pct(validRecords, len(records))
	rep.Completeness = pct(optionalFilled, optionalTotal)
	rep.CategoryAssignment = pct(categorized, len(records))
	for f := range missing {
		rep.MissingFields = append(rep.MissingFields, f)
	}
	sort.Strings(rep.MissingFields)

	rep.Overall = overall(rep, w)
	return rep
}

// allRecords flattens the artifact without dropping title-less records; the
// scorer must see them to penalize structural validity.
func allRecords(a *artifact.Artifact) []artifact.RawRecord {
	if a.Shape == artifact.ShapeFlat {
		return a.Credits
	}
	var out []artifact.RawRecord
	for _, cat := range a.Categories {
		for _, r := range cat.Credits {
			r.Category = cat.Name
			out = append(out, r)
		}
	}
	return out
}

// recordValid checks required keys and primitive types against the retained
// raw JSON object, accumulating absent required fields into missing.
func recordValid(r artifact.RawRecord, missing map[string]bool) bool {
	valid := true
	for _, f := range requiredFields {
		if r.Field(f) == "" {
			missing[f] = true
			valid = false
		}
	}
	for _, f := range stringFields {
		v, present := r.Raw[f]
		if !present || v == nil {
			continue
		}
		switch v.(type) {
		case string, float64:
		default:
			valid = false
		}
	}
	return valid
}

// categoryTag returns the tag that counts as a category assignment: the
// owning category name for hierarchical artifacts, the record's type for
// flat ones.
func categoryTag(a *artifact.Artifact, r artifact.RawRecord) string {
	if a.Shape == artifact.ShapeHierarchical {
		return r.Category
	}
	return r.Type
}

// overall combines the three percentages using the configured weights, equal
// weighting when none are set.
func overall(rep Report, w Weights) float64 {
	ws, wc, wg := w.Structural, w.Completeness, w.Category
	if ws <= 0 && wc <= 0 && wg <= 0 {
		ws, wc, wg = 1, 1, 1
	}
	total := ws + wc + wg
	if total == 0 {
		return 0
	}
	return (rep.StructuralValidity*ws + rep.Completeness*wc + rep.CategoryAssignment*wg) / total
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
