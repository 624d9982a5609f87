// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
}

func TestFS_ListDirectory_Flat(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "zones/b.yaml", "b")
	writeFile(t, root, "zones/a.yaml", "a")
	writeFile(t, root, "zones/partial/p.yaml", "p")

	st := NewFS(root)
	files, err := st.ListDirectory("zones", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"zones/a.yaml", "zones/b.yaml"}, files,
		"flat listing skips subdirectories and sorts")
}

func TestFS_ListDirectory_Recursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "events/town/greet.yaml", "x")
	writeFile(t, root, "events/root.yaml", "x")

	st := NewFS(root)
	files, err := st.ListDirectory("events", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"events/root.yaml", "events/town/greet.yaml"}, files)
}

func TestFS_ListDirectory_Missing(t *testing.T) {
	st := NewFS(t.TempDir())

	files, err := st.ListDirectory("does/not/exist", false)
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = st.ListDirectory("does/not/exist", true)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFS_ReadFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pack.yaml", "name: p\n")

	st := NewFS(root)
	data, err := st.ReadFile("pack.yaml")
	require.NoError(t, err)
	assert.Equal(t, "name: p\n", string(data))

	_, err = st.ReadFile("missing.yaml")
	assert.Error(t, err)
}

func TestMatch(t *testing.T) {
	paths := []string{
		"zones/a.yaml",
		"zones/notes.txt",
		"scripts/ai/wolf.lua",
	}

	yamls, err := Match(paths, "*.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"zones/a.yaml"}, yamls)

	luas, err := Match(paths, "*.lua")
	require.NoError(t, err)
	assert.Equal(t, []string{"scripts/ai/wolf.lua"}, luas)
}

func TestMatch_InvalidPattern(t *testing.T) {
	_, err := Match([]string{"a"}, "[")
	assert.Error(t, err)
}
