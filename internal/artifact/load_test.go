package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeArtifact(t, dir, "a.json", `{"credits": [{"title": "Hamlet"}]}`)
	a, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ShapeFlat, a.Shape)
	assert.Equal(t, path, a.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadAll_SkipsBrokenArtifacts(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	good := writeArtifact(t, dir, "good.json", `{"credits": [{"title": "Hamlet"}]}`)
	bad := writeArtifact(t, dir, "bad.json", `{not json`)
	wrongShape := writeArtifact(t, dir, "shape.json", `{"something": "else"}`)
	missing := filepath.Join(dir, "missing.json")

	arts := LoadAll([]string{good, bad, wrongShape, missing})
	require.Len(t, arts, 1)
	assert.Equal(t, good, arts[0].Path)
}

func TestLoadAll_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, LoadAll(nil))
}
