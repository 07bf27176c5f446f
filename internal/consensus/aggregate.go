package consensus

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/consensus-cli/internal/artifact"
)

// ErrInsufficientData signals that no valid artifact survived loading; no
// partial consensus is produced.
var ErrInsufficientData = eris.New("consensus: no valid artifacts")

// uncategorizedName groups records from flat artifacts when the dominant
// shape is hierarchical.
const uncategorizedName = "Uncategorized"

// Options tunes a consensus build.
type Options struct {
	// SimilarityThreshold overrides DefaultSimilarityThreshold when > 0.
	SimilarityThreshold float64
}

// Build fuses the surviving artifacts into one Result. The output mirrors the
// dominant input shape (hierarchical on a tie). Pure transformation over the
// given artifacts: deterministic for identical inputs in identical order.
func Build(artifacts []*artifact.Artifact, opts Options) (*Result, error) {
	if len(artifacts) == 0 {
		return nil, ErrInsufficientData
	}

	res := &Result{
		Confidence: make(map[string]float64),
		Metadata: Metadata{
			ProviderCount: len(artifacts),
			GeneratedAt:   time.Now().UTC(),
		},
	}

	res.ShowYears = voteShowYears(artifacts, res.Confidence)

	if dominantShape(artifacts) == artifact.ShapeHierarchical {
		buildHierarchical(artifacts, opts, res)
	} else {
		buildFlat(artifacts, opts, res)
	}

	res.Overall = meanConfidence(res.Confidence)

	zap.L().Debug("consensus built",
		zap.Int("providers", res.Metadata.ProviderCount),
		zap.Int("resolved_fields", len(res.Confidence)),
		zap.Float64("overall", res.Overall))

	return res, nil
}

// dominantShape returns the shape the majority of artifacts matched; an exact
// tie keeps the hierarchy rather than flattening category tags away.
func dominantShape(artifacts []*artifact.Artifact) artifact.Shape {
	hier := 0
	for _, a := range artifacts {
		if a.Shape == artifact.ShapeHierarchical {
			hier++
		}
	}
	if hier*2 >= len(artifacts) {
		return artifact.ShapeHierarchical
	}
	return artifact.ShapeFlat
}

// voteShowYears majority-votes the display-years flag across artifacts that
// set it. An exact tie resolves to true; that bias is deliberate and covered
// by tests. Returns nil when no artifact voted.
func voteShowYears(artifacts []*artifact.Artifact, conf map[string]float64) *bool {
	votes, trues := 0, 0
	for _, a := range artifacts {
		if a.ShowYears == nil {
			continue
		}
		votes++
		if *a.ShowYears {
			trues++
		}
	}
	if votes == 0 {
		return nil
	}

	v := trues*2 >= votes
	winning := trues
	if !v {
		winning = votes - trues
	}
	conf["showYears"] = float64(winning) / float64(votes)
	return &v
}

// buildHierarchical resolves credits per category. Category names are the
// union across artifacts in first-seen order; flat artifacts contribute under
// a synthetic category. Categories yielding no credits are dropped silently.
func buildHierarchical(artifacts []*artifact.Artifact, opts Options, res *Result) {
	var order []string
	byCategory := make(map[string][]artifact.RawRecord)

	add := func(name string, r artifact.RawRecord) {
		if _, seen := byCategory[name]; !seen {
			order = append(order, name)
		}
		byCategory[name] = append(byCategory[name], r)
	}

	for _, a := range artifacts {
		for _, r := range a.Records() {
			name := r.Category
			if name == "" {
				name = uncategorizedName
			}
			add(name, r)
		}
	}

	for _, name := range order {
		groups := groupRecords(byCategory[name], opts.SimilarityThreshold)
		if len(groups) == 0 {
			continue
		}

		cat := CategoryConsensus{
			Name:    name,
			ID:      hashID(name),
			Credits: make([]Record, 0, len(groups)),
		}
		for _, g := range groups {
			rec, conf := resolveGroup(g)
			idx := len(cat.Credits)
			cat.Credits = append(cat.Credits, rec)
			for field, score := range conf {
				res.Confidence[fmt.Sprintf("%s.credits[%d].%s", name, idx, field)] = score
			}
		}

		// The grouping key itself is definitionally certain.
		res.Confidence[fmt.Sprintf("%s.id", name)] = 1.0
		res.Resume = append(res.Resume, cat)
	}
}

// buildFlat resolves one global credits list; category tags from any
// hierarchical minority artifacts are ignored.
func buildFlat(artifacts []*artifact.Artifact, opts Options, res *Result) {
	var records []artifact.RawRecord
	for _, a := range artifacts {
		records = append(records, a.Records()...)
	}

	groups := groupRecords(records, opts.SimilarityThreshold)
	res.Credits = make([]Record, 0, len(groups))
	for _, g := range groups {
		rec, conf := resolveGroup(g)
		idx := len(res.Credits)
		res.Credits = append(res.Credits, rec)
		for field, score := range conf {
			res.Confidence[fmt.Sprintf("credits[%d].%s", idx, field)] = score
		}
	}
}

// meanConfidence averages every entry in the confidence map, fixed-1.0
// entries included. An empty map means nothing was resolved anywhere.
func meanConfidence(conf map[string]float64) float64 {
	if len(conf) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range conf {
		sum += v
	}
	return sum / float64(len(conf))
}
