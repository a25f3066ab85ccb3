package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDiscover_ScansCSVs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "feb.csv", "b")
	writeFile(t, dir, "jan.CSV", "a")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.csv"), 0o755))

	files, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Sorted by name, case-insensitive extension match, directories skipped.
	assert.Equal(t, "feb.csv", files[0].Name)
	assert.Equal(t, "jan.CSV", files[1].Name)
	assert.Equal(t, filepath.Join(dir, "feb.csv"), files[0].Path)
	assert.Equal(t, int64(1), files[0].Size)
}

func TestDiscover_ManifestTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wanted.csv", "x")
	writeFile(t, dir, "unwanted.csv", "y")
	writeFile(t, dir, "files.json", `["wanted.csv"]`)

	files, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "wanted.csv", files[0].Name)
}

func TestDiscover_ManifestKeepsMissingEntry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "jan.csv", "x")
	writeFile(t, dir, "files.json", `["jan.csv","missing.csv"]`)

	// A stale manifest entry must not abort discovery; the read step
	// handles the missing file.
	files, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "jan.csv", files[0].Name)
	assert.Equal(t, int64(1), files[0].Size)
	assert.Equal(t, "missing.csv", files[1].Name)
	assert.Equal(t, filepath.Join(dir, "missing.csv"), files[1].Path)
}

func TestDiscover_MissingDir(t *testing.T) {
	files, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	parser := testParser(t)
	reg.Register(parser)

	assert.Equal(t, parser, reg.Get("card"))
	assert.Equal(t, parser, reg.Get("CARD"))
	assert.Nil(t, reg.Get("ofx"))

	assert.Panics(t, func() { reg.Register(parser) })
}
