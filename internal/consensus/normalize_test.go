package consensus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "Iron Man", want: "iron man"},
		{name: "punctuation stripped", input: "iron man!", want: "iron man"},
		{name: "whitespace collapsed", input: "  Iron   Man  ", want: "iron man"},
		{name: "mixed", input: "The King's  Speech!!", want: "the kings speech"},
		{name: "digits kept", input: "Iron Man 2", want: "iron man 2"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "?!*", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeTitle(tt.input))
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	sim := func(a, b string) float64 {
		return similarity(tokenSet(normalizeTitle(a)), tokenSet(normalizeTitle(b)))
	}

	// Identical token sets after normalization.
	assert.Equal(t, 1.0, sim("Iron Man", "iron man!"))

	// Two of three tokens shared: stays below the clustering threshold.
	assert.InDelta(t, 2.0/3.0, sim("Iron Man", "Iron Man 2"), 1e-9)

	// Disjoint titles.
	assert.Equal(t, 0.0, sim("Hamlet", "Macbeth"))

	// Both empty.
	assert.Equal(t, 0.0, sim("", ""))
}
