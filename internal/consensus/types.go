// Package consensus fuses multiple provider extraction artifacts describing
// the same resume into a single reconciled record, attaching a trust score to
// every resolved field.
package consensus

import (
	"time"

	"github.com/sells-group/consensus-cli/internal/artifact"
)

// Record is one fused credit: the majority value per field across a group of
// matched raw records. Per-field confidences live in the Result's confidence
// map, keyed by field path.
type Record struct {
	ID            string   `json:"id"`
	Title         string   `json:"title,omitempty"`
	Role          string   `json:"role,omitempty"`
	Year          string   `json:"year,omitempty"`
	Director      string   `json:"director,omitempty"`
	Type          string   `json:"type,omitempty"`
	AttachedMedia []string `json:"attachedMedia"`
}

func (r *Record) setField(name, value string) {
	switch name {
	case "title":
		r.Title = value
	case "role":
		r.Role = value
	case "year":
		r.Year = value
	case "director":
		r.Director = value
	case "type":
		r.Type = value
	case "id":
		r.ID = value
	}
}

// CategoryConsensus is one resolved category of a hierarchical result. Its ID
// is a deterministic function of the name, stable across runs.
type CategoryConsensus struct {
	Name    string   `json:"name"`
	ID      string   `json:"id"`
	Credits []Record `json:"credits"`
}

// Metadata describes how a result was produced.
type Metadata struct {
	ProviderCount int       `json:"providerCount"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

// Result is the fused output. Exactly one of Resume or Credits is populated,
// mirroring the dominant input shape. Confidence maps dotted/bracketed field
// paths (e.g. "Film.credits[2].role") to scores in (0, 1].
type Result struct {
	Resume     []CategoryConsensus `json:"resume,omitempty"`
	Credits    []Record            `json:"credits,omitempty"`
	ShowYears  *bool               `json:"showYears,omitempty"`
	Confidence map[string]float64  `json:"confidence"`
	Overall    float64             `json:"overallConfidence"`
	Metadata   Metadata            `json:"metadata"`
}

// MatchGroup is an ordered cluster of raw records judged to describe the same
// credit. The first member is the representative: its normalized title is the
// comparison anchor for all later similarity checks against this group.
type MatchGroup struct {
	Members []artifact.RawRecord

	repTokens map[string]struct{}
}

// Representative returns the group's anchor record.
func (g *MatchGroup) Representative() artifact.RawRecord {
	return g.Members[0]
}
