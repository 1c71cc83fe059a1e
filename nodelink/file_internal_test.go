// SPDX-License-Identifier: MIT

package nodelink

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcore/core"
)

var errDiskFull = errors.New("disk full")

// dirEntries lists the names in dir.
func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	return names
}

// TestWriteAtomic_FailedWriteKeepsPreviousDocument: a write that fails half
// way leaves the old file byte-for-byte and no temp file behind.
func TestWriteAtomic_FailedWriteKeepsPreviousDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	g := core.NewGraph()
	_, err := g.UpsertEdge("A", "B", 5)
	require.NoError(t, err)
	require.NoError(t, Save(path, g))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = writeAtomic(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, `{"directed": fal`)
		return errDiskFull
	})
	require.ErrorIs(t, err, errDiskFull)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{"graph.json"}, dirEntries(t, dir))
}

// TestSave_ReplacesDocument: a successful save swaps in the new content,
// keeps 0644 and leaves no temp file.
func TestSave_ReplacesDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")

	g := core.NewGraph()
	_, _ = g.UpsertEdge("A", "B", 5)
	require.NoError(t, Save(path, g))
	_, _ = g.UpsertEdge("B", "C", 2)
	require.NoError(t, Save(path, g))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), got.Edges())
	assert.Equal(t, []string{"graph.yaml"}, dirEntries(t, dir))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(documentPerm), info.Mode().Perm())
}

// TestSave_MissingDirectory fails without creating anything.
func TestSave_MissingDirectory(t *testing.T) {
	dir := t.TempDir()
	err := Save(filepath.Join(dir, "nope", "graph.json"), core.NewGraph())
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, dirEntries(t, dir))
}
