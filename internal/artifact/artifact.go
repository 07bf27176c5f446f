// Package artifact parses provider extraction artifacts into a normalized
// shape the consensus engine can consume. Providers emit one of two layouts:
// a hierarchical resume (named categories of credits) or a flat credits list.
package artifact

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrUnrecognizedSchema marks an artifact matching neither known layout.
// Callers exclude the artifact from the contributing set rather than abort.
var ErrUnrecognizedSchema = eris.New("artifact: unrecognized schema")

// Shape identifies which of the two artifact layouts a provider produced.
type Shape string

const (
	ShapeHierarchical Shape = "hierarchical"
	ShapeFlat         Shape = "flat"
)

// RawRecord is one credit occurrence as extracted by one provider.
// All values are coerced to strings; numeric years become their decimal form.
// The original decoded JSON object is retained for structural scoring.
type RawRecord struct {
	Title    string `json:"title"`
	Role     string `json:"role,omitempty"`
	Year     string `json:"year,omitempty"`
	Director string `json:"director,omitempty"`
	ID       string `json:"id,omitempty"`
	Type     string `json:"type,omitempty"`

	// Category is the owning category name for records from hierarchical
	// artifacts; empty for flat artifacts.
	Category string `json:"-"`

	Raw map[string]any `json:"-"`
}

// UnmarshalJSON decodes a record leniently: unknown keys are retained in Raw,
// and scalar values of the wrong primitive type are coerced where a faithful
// string form exists.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	r.Raw = m
	r.Title = coerceString(m["title"])
	r.Role = coerceString(m["role"])
	r.Year = coerceString(m["year"])
	r.Director = coerceString(m["director"])
	r.ID = coerceString(m["id"])
	r.Type = coerceString(m["type"])
	return nil
}

// Field returns the record's value for a tracked field name.
func (r *RawRecord) Field(name string) string {
	switch name {
	case "title":
		return r.Title
	case "role":
		return r.Role
	case "year":
		return r.Year
	case "director":
		return r.Director
	case "id":
		return r.ID
	case "type":
		return r.Type
	default:
		return ""
	}
}

// coerceString renders a decoded JSON scalar as a string. Numbers that are
// whole render without a fraction (a year of 2020 becomes "2020").
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// Category is one named group of credits inside a hierarchical artifact.
type Category struct {
	Name    string      `json:"name"`
	Credits []RawRecord `json:"credits"`
}

// Artifact is one provider run's output, tagged with the layout it matched.
// Exactly one of Categories or Credits is populated.
type Artifact struct {
	Shape      Shape
	Categories []Category
	Credits    []RawRecord
	ShowYears  *bool
	Path       string
}

// Parse detects the artifact layout and decodes it. An artifact with both a
// resume array and a flat credits array, or neither, fails with
// ErrUnrecognizedSchema.
func Parse(data []byte) (*Artifact, error) {
	var probe struct {
		Resume    json.RawMessage `json:"resume"`
		Credits   json.RawMessage `json:"credits"`
		ShowYears *bool           `json:"showYears"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, eris.Wrap(err, "artifact: decode")
	}

	hasResume := isPresent(probe.Resume)
	hasCredits := isPresent(probe.Credits)
	if hasResume == hasCredits {
		return nil, ErrUnrecognizedSchema
	}

	a := &Artifact{ShowYears: probe.ShowYears}
	if hasResume {
		a.Shape = ShapeHierarchical
		if err := json.Unmarshal(probe.Resume, &a.Categories); err != nil {
			return nil, eris.Wrap(err, "artifact: decode resume")
		}
		return a, nil
	}

	a.Shape = ShapeFlat
	if err := json.Unmarshal(probe.Credits, &a.Credits); err != nil {
		return nil, eris.Wrap(err, "artifact: decode credits")
	}
	return a, nil
}

// Records flattens the artifact into a single record list with category tags
// applied. Records without a title are dropped here so the matcher never sees
// a group anchored on an empty title.
func (a *Artifact) Records() []RawRecord {
	var out []RawRecord
	if a.Shape == ShapeFlat {
		for _, r := range a.Credits {
			if strings.TrimSpace(r.Title) == "" {
				continue
			}
			out = append(out, r)
		}
		return out
	}
	for _, cat := range a.Categories {
		for _, r := range cat.Credits {
			if strings.TrimSpace(r.Title) == "" {
				continue
			}
			r.Category = cat.Name
			out = append(out, r)
		}
	}
	return out
}

func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
