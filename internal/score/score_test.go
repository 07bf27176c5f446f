package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/consensus-cli/internal/artifact"
)

func mustParse(t *testing.T, data string) *artifact.Artifact {
	t.Helper()
	a, err := artifact.Parse([]byte(data))
	require.NoError(t, err)
	return a
}

func TestScore_FullyPopulatedFlatArtifact(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `{"credits": [
		{"title": "Hamlet", "role": "Lead", "year": "2020", "director": "Branagh", "id": "x1", "type": "play"}
	]}`)

	rep := Score(a, Weights{})
	assert.Equal(t, 100.0, rep.StructuralValidity)
	assert.Equal(t, 100.0, rep.Completeness)
	assert.Equal(t, 100.0, rep.CategoryAssignment)
	assert.Equal(t, 100.0, rep.Overall)
	assert.Empty(t, rep.MissingFields)
}

func TestScore_RequiredFieldMissingEverywhere(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `{"credits": [
		{"title": "Hamlet"},
		{"title": "Macbeth"}
	]}`)

	rep := Score(a, Weights{})
	assert.Contains(t, rep.MissingFields, "role")
	assert.Less(t, rep.StructuralValidity, 100.0)
}

func TestScore_PartialCompleteness(t *testing.T) {
	t.Parallel()

	// Two records, four optional fields each; exactly two of eight filled.
	a := mustParse(t, `{"credits": [
		{"title": "Hamlet", "role": "Lead", "year": "2020"},
		{"title": "Macbeth", "role": "Lead", "type": "play"}
	]}`)

	rep := Score(a, Weights{})
	assert.Equal(t, 100.0, rep.StructuralValidity)
	assert.InDelta(t, 25.0, rep.Completeness, 1e-9)
}

func TestScore_WrongPrimitiveTypePenalized(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `{"credits": [
		{"title": "Hamlet", "role": "Lead", "year": ["2020"]},
		{"title": "Macbeth", "role": "Lead"}
	]}`)

	rep := Score(a, Weights{})
	assert.Equal(t, 50.0, rep.StructuralValidity)
	assert.Empty(t, rep.MissingFields)
}

func TestScore_CategoryAssignment(t *testing.T) {
	t.Parallel()

	// Hierarchical records always carry their owning category name.
	hier := mustParse(t, `{"resume": [
		{"name": "Film", "credits": [{"title": "Iron Man", "role": "Extra"}]}
	]}`)
	rep := Score(hier, Weights{})
	assert.Equal(t, 100.0, rep.CategoryAssignment)

	// Flat records count their type tag instead.
	flat := mustParse(t, `{"credits": [
		{"title": "Iron Man", "role": "Extra", "type": "film"},
		{"title": "Hamlet", "role": "Lead"}
	]}`)
	rep = Score(flat, Weights{})
	assert.Equal(t, 50.0, rep.CategoryAssignment)
}

func TestScore_Weights(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `{"credits": [
		{"title": "Hamlet", "role": "Lead", "year": "2020", "director": "B", "id": "x", "type": "play"},
		{"title": "Macbeth", "year": "1971"}
	]}`)

	equal := Score(a, Weights{})
	structuralOnly := Score(a, Weights{Structural: 1})

	assert.Equal(t, 50.0, structuralOnly.Overall)
	assert.NotEqual(t, equal.Overall, structuralOnly.Overall)
	assert.InDelta(t, (equal.StructuralValidity+equal.Completeness+equal.CategoryAssignment)/3,
		equal.Overall, 1e-9)
}

func TestScore_EmptyArtifact(t *testing.T) {
	t.Parallel()

	rep := Score(mustParse(t, `{"credits": []}`), Weights{})
	assert.Zero(t, rep.Overall)
	assert.Zero(t, rep.StructuralValidity)
	assert.Empty(t, rep.MissingFields)
}
