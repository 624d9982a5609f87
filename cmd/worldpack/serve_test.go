// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskhollow/worldpack/internal/content"
	"github.com/duskhollow/worldpack/internal/registry"
)

func TestServeCommand_Help(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"serve", "--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "SIGHUP reloads")
	assert.Contains(t, buf.String(), "--listen")
}

func TestReloadPack_SwapsSnapshot(t *testing.T) {
	dir, catalogPath := writePack(t)
	cfg := &Config{DataDir: dir, Catalog: catalogPath}

	ldr, err := openPack(cfg)
	require.NoError(t, err)
	reg, err := ldr.LoadAll(context.Background())
	require.NoError(t, err)

	handle := registry.NewHandle(reg)
	before := handle.Current().ID

	reloadPack(context.Background(), cfg, handle)

	after := handle.Current()
	assert.Equal(t, 1, after.ID.Compare(before), "reload publishes a fresh snapshot")
	assert.NotNil(t, after.Registry.Zone(1000, 1))
}

func loadedHandle(t *testing.T) *registry.Handle {
	t.Helper()
	dir, catalogPath := writePack(t)

	ldr, err := openPack(&Config{DataDir: dir, Catalog: catalogPath})
	require.NoError(t, err)
	reg, err := ldr.LoadAll(context.Background())
	require.NoError(t, err)
	return registry.NewHandle(reg)
}

func TestComposedZoneHandler_ReturnsZone(t *testing.T) {
	h := composedZoneHandler(loadedHandle(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/zones/composed?zone=1000&dynamic_map=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var zone content.ZoneDefinition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &zone))
	assert.Equal(t, uint32(1000), zone.ID)
	assert.True(t, zone.SkillBlacklist.Contains(200),
		"auto-apply partial is folded into the response")
}

func TestComposedZoneHandler_BadInput(t *testing.T) {
	h := composedZoneHandler(loadedHandle(t))

	for _, target := range []string{
		"/zones/composed",
		"/zones/composed?zone=abc",
		"/zones/composed?zone=1000&dynamic_map=abc",
		"/zones/composed?zone=1000&partial=abc",
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestComposedZoneHandler_UnknownZone(t *testing.T) {
	h := composedZoneHandler(loadedHandle(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zones/composed?zone=42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComposedZoneHandler_InvalidPartial(t *testing.T) {
	h := composedZoneHandler(loadedHandle(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/zones/composed?zone=1000&partial=99", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReloadPack_KeepsSnapshotOnFailure(t *testing.T) {
	dir, catalogPath := writePack(t)
	cfg := &Config{DataDir: dir, Catalog: catalogPath}

	ldr, err := openPack(cfg)
	require.NoError(t, err)
	reg, err := ldr.LoadAll(context.Background())
	require.NoError(t, err)

	handle := registry.NewHandle(reg)
	before := handle.Current()

	broken := &Config{DataDir: dir, Catalog: ""}
	reloadPack(context.Background(), broken, handle)

	assert.Same(t, before, handle.Current(), "failed reload keeps the active snapshot")
}
