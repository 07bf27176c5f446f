package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/consensus-cli/internal/score"
)

func TestFormatScoreTable(t *testing.T) {
	results := []scoredArtifact{
		{
			Path: "out/claude.json",
			Report: &score.Report{
				Overall:            87.5,
				StructuralValidity: 100,
				Completeness:       75,
				CategoryAssignment: 87.5,
				MissingFields:      []string{},
			},
		},
		{
			Path:  "out/broken.json",
			Error: "artifact: unrecognized schema",
		},
		{
			Path: "out/gpt.json",
			Report: &score.Report{
				Overall:       33.3,
				MissingFields: []string{"role", "title"},
			},
		},
	}

	var b strings.Builder
	formatScoreTable(&b, results)
	out := b.String()

	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "out/claude.json")
	assert.Contains(t, out, "87.5")
	assert.Contains(t, out, "unrecognized schema")
	assert.Contains(t, out, "role,title")
}
