// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePack lays out a minimal valid content pack plus a catalog index and
// returns the pack directory and catalog path.
func writePack(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"pack.yaml": "name: cli-test\nformat: 1.0.0\n",
		"zones/town.yaml": `
records:
  - id: 1000
    dynamic_map_id: 1
    spawns:
      1:
        species_id: 401
`,
		"zones/partial/night.yaml": `
records:
  - id: 3
    auto_apply: true
    dynamic_map_ids: [1]
    skill_blacklist: [200]
`,
	}
	for rel, doc := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte(doc), 0o600))
	}

	catalogPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(
		"zones:\n  1000: 2\nspecies:\n  - 401\n"), 0o600))

	return dir, catalogPath
}

func TestValidateCommand_Help(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", "--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "validate a content pack")
}

func TestValidateCommand_ValidPack(t *testing.T) {
	dir, catalogPath := writePack(t)

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", "--data-dir", dir, "--catalog", catalogPath})

	require.NoError(t, cmd.Execute())
}

func TestValidateCommand_NoCatalog(t *testing.T) {
	dir, _ := writePack(t)

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", "--data-dir", dir})

	assert.Error(t, cmd.Execute())
}

func TestValidateCommand_BrokenPack(t *testing.T) {
	dir, catalogPath := writePack(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zones", "bad.yaml"),
		[]byte("records:\n  - id: 1000\n    dynamic_map_id: 1\n"), 0o600))

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", "--data-dir", dir, "--catalog", catalogPath})

	assert.Error(t, cmd.Execute(), "duplicate zone definitions fail validation")
}
