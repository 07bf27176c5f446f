package consensus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/consensus-cli/internal/artifact"
)

func titled(titles ...string) []artifact.RawRecord {
	out := make([]artifact.RawRecord, len(titles))
	for i, t := range titles {
		out[i] = artifact.RawRecord{Title: t}
	}
	return out
}

func TestGroupRecords_MergesEquivalentTitles(t *testing.T) {
	t.Parallel()

	groups := groupRecords(titled("Iron Man", "iron man!", "IRON   MAN"), DefaultSimilarityThreshold)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Members, 3)
	assert.Equal(t, "Iron Man", groups[0].Representative().Title)
}

func TestGroupRecords_KeepsSequelsApart(t *testing.T) {
	t.Parallel()

	groups := groupRecords(titled("Iron Man", "Iron Man 2"), DefaultSimilarityThreshold)
	assert.Len(t, groups, 2)
}

func TestGroupRecords_RepresentativeUnchangedByLaterMembers(t *testing.T) {
	t.Parallel()

	// "iron man" joins the first group; the representative stays the first
	// record ever placed there, so "iron man 2" is still compared against
	// "Iron Man" and kept apart.
	groups := groupRecords(titled("Iron Man", "iron man", "Iron Man 2"), DefaultSimilarityThreshold)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Members, 2)
	assert.Equal(t, "Iron Man", groups[0].Representative().Title)
	assert.Equal(t, "Iron Man 2", groups[1].Representative().Title)
}

func TestGroupRecords_FirstMatchingGroupWins(t *testing.T) {
	t.Parallel()

	// Identical titles always land in the earliest matching group.
	groups := groupRecords(titled("Hamlet", "Macbeth", "Hamlet", "Hamlet"), DefaultSimilarityThreshold)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Members, 3)
	assert.Len(t, groups[1].Members, 1)
}

func TestGroupRecords_Deterministic(t *testing.T) {
	t.Parallel()

	records := titled("Iron Man", "The Avengers", "iron man", "Avengers", "Hamlet")
	first := groupRecords(records, DefaultSimilarityThreshold)
	second := groupRecords(records, DefaultSimilarityThreshold)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Members, second[i].Members)
	}
}

func TestGroupRecords_ZeroThresholdUsesDefault(t *testing.T) {
	t.Parallel()

	groups := groupRecords(titled("Iron Man", "Iron Man 2"), 0)
	assert.Len(t, groups, 2)
}
