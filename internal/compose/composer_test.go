// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskhollow/worldpack/internal/content"
	"github.com/duskhollow/worldpack/internal/registry"
	"github.com/duskhollow/worldpack/pkg/errutil"
)

func newReg(t *testing.T, zones []*content.ZoneDefinition, partials []*content.ZonePartial) *registry.Registry {
	t.Helper()
	reg := registry.New(&content.PackManifest{Name: "test", Format: content.FormatVersion})
	for _, zone := range zones {
		require.NoError(t, reg.AddZone(zone))
	}
	for _, partial := range partials {
		require.NoError(t, reg.AddPartial(partial))
	}
	return reg
}

func TestGetComposed_CanonicalPassthrough(t *testing.T) {
	zone := &content.ZoneDefinition{ID: 1000, DynamicMapID: 3}
	reg := newReg(t, []*content.ZoneDefinition{zone}, nil)

	got, err := New(reg).GetComposed(1000, 3, nil)
	require.NoError(t, err)
	assert.Same(t, zone, got, "no applicable partials returns the canonical definition without copying")
}

func TestGetComposed_UnknownZone(t *testing.T) {
	reg := newReg(t, nil, nil)

	got, err := New(reg).GetComposed(1000, 3, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetComposed_ZeroDynamicMapResolvesFirst(t *testing.T) {
	zone := &content.ZoneDefinition{ID: 1000, DynamicMapID: 3}
	partial := &content.ZonePartial{
		ID: 1, AutoApply: true, DynamicMapIDs: content.NewIDSet(3),
		DropSetIDs: content.NewIDSet(500),
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})

	got, err := New(reg).GetComposed(1000, 0, nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotSame(t, zone, got)
	assert.True(t, got.DropSetIDs.Contains(500),
		"auto-apply set is keyed by the resolved dynamic map id")
}

func TestGetComposed_AutoApplyLeavesCanonicalIntact(t *testing.T) {
	zone := &content.ZoneDefinition{
		ID: 1000, DynamicMapID: 3,
		DropSetIDs: content.NewIDSet(100),
	}
	partial := &content.ZonePartial{
		ID: 1, AutoApply: true, DynamicMapIDs: content.NewIDSet(3),
		DropSetIDs: content.NewIDSet(200),
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})

	got, err := New(reg).GetComposed(1000, 3, nil)
	require.NoError(t, err)
	require.NotSame(t, zone, got)

	assert.Equal(t, []uint32{100, 200}, got.DropSetIDs.Sorted(), "drop sets merge as a union")
	assert.Equal(t, []uint32{100}, zone.DropSetIDs.Sorted(), "canonical untouched")
}

func TestGetComposed_ExtraPartialValidation(t *testing.T) {
	zone := &content.ZoneDefinition{ID: 1000, DynamicMapID: 3}
	partials := []*content.ZonePartial{
		{ID: 1, AutoApply: true, DynamicMapIDs: content.NewIDSet(3)},
		{ID: 2, DynamicMapIDs: content.NewIDSet(7)},
		{ID: 3},
		{ID: 4, DynamicMapIDs: content.NewIDSet(3), SkillBlacklist: content.NewIDSet(9)},
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, partials)
	c := New(reg)

	_, err := c.GetComposed(1000, 3, content.NewIDSet(99))
	errutil.AssertErrorCode(t, err, "invalid_partial")

	_, err = c.GetComposed(1000, 3, content.NewIDSet(1))
	errutil.AssertErrorCode(t, err, "invalid_partial")

	_, err = c.GetComposed(1000, 3, content.NewIDSet(2))
	errutil.AssertErrorCode(t, err, "invalid_partial")

	got, err := c.GetComposed(1000, 3, content.NewIDSet(3, 4))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.SkillBlacklist.Contains(9))
}

func TestGetComposed_AscendingIDPrecedence(t *testing.T) {
	zone := &content.ZoneDefinition{ID: 1000, DynamicMapID: 3}
	partials := []*content.ZonePartial{
		{ID: 9, Spawns: map[uint32]*content.Spawn{1: {SpeciesID: 900}}},
		{ID: 2, Spawns: map[uint32]*content.Spawn{1: {SpeciesID: 200}}},
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, partials)

	got, err := New(reg).GetComposed(1000, 3, content.NewIDSet(2, 9))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint32(900), got.Spawns[1].SpeciesID, "highest partial id wins a conflicting key")
}

func TestGetComposed_NPCSpotReplacement(t *testing.T) {
	zone := &content.ZoneDefinition{
		ID: 1000, DynamicMapID: 3,
		NPCs: []*content.NPCPlacement{
			{ID: 10, SpotID: 7},
			{ID: 11, SpotID: 8},
		},
	}
	partial := &content.ZonePartial{
		ID:   1,
		NPCs: []*content.NPCPlacement{{ID: 20, SpotID: 7}},
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})

	got, err := New(reg).GetComposed(1000, 3, content.NewIDSet(1))
	require.NoError(t, err)
	require.Len(t, got.NPCs, 2)

	ids := []uint32{got.NPCs[0].ID, got.NPCs[1].ID}
	assert.ElementsMatch(t, []uint32{11, 20}, ids, "same spot id replaces, other spots untouched")
}

func TestGetComposed_ProximityDelete(t *testing.T) {
	zone := &content.ZoneDefinition{
		ID: 1000, DynamicMapID: 3,
		Objects: []*content.ObjectPlacement{
			{ID: 30, X: 100, Y: 100},
			{ID: 31, X: 100, Y: 120},
		},
	}
	// An id-zero record removes matching placements and inserts nothing.
	// Object 30 is within 10 units on both axes (5, 8); object 31 is 12
	// units away on Y and stays.
	partial := &content.ZonePartial{
		ID:      1,
		Objects: []*content.ObjectPlacement{{ID: 0, X: 105, Y: 108}},
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})

	got, err := New(reg).GetComposed(1000, 3, content.NewIDSet(1))
	require.NoError(t, err)
	require.Len(t, got.Objects, 1, "placement within 10 units on both axes removed")
	assert.Equal(t, uint32(31), got.Objects[0].ID)
	assert.Len(t, zone.Objects, 2, "canonical untouched")
}

func TestGetComposed_SpotMismatchKeepsBoth(t *testing.T) {
	zone := &content.ZoneDefinition{
		ID: 1000, DynamicMapID: 3,
		NPCs: []*content.NPCPlacement{{ID: 10, SpotID: 7}},
	}
	// Zero-spot incoming never matches a spot-placed NPC.
	partial := &content.ZonePartial{
		ID:   1,
		NPCs: []*content.NPCPlacement{{ID: 20, X: 0, Y: 0}},
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})

	got, err := New(reg).GetComposed(1000, 3, content.NewIDSet(1))
	require.NoError(t, err)
	assert.Len(t, got.NPCs, 2)
}

func TestGetComposed_TriggersAppend(t *testing.T) {
	zone := &content.ZoneDefinition{
		ID: 1000, DynamicMapID: 3,
		Triggers: []*content.Trigger{{Kind: content.TriggerOnSetup}},
	}
	partial := &content.ZonePartial{
		ID:       1,
		Triggers: []*content.Trigger{{Kind: content.TriggerOnZoneIn}},
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})

	got, err := New(reg).GetComposed(1000, 3, content.NewIDSet(1))
	require.NoError(t, err)
	require.Len(t, got.Triggers, 2)
	assert.Equal(t, content.TriggerOnSetup, got.Triggers[0].Kind)
	assert.Equal(t, content.TriggerOnZoneIn, got.Triggers[1].Kind)
}

func TestGetComposed_SpawnGroupRepair(t *testing.T) {
	zone := &content.ZoneDefinition{
		ID: 1000, DynamicMapID: 3,
		Spawns: map[uint32]*content.Spawn{
			1: {SpeciesID: 401},
			2: {SpeciesID: 402},
		},
		SpawnGroups: map[uint32]*content.SpawnGroup{
			5: {ID: 5, Spawns: map[uint32]uint16{1: 2, 2: 2}},
		},
	}
	// Overwrites group 5 to reference a spawn that does not exist and adds
	// group 6 whose references are all missing.
	partial := &content.ZonePartial{
		ID: 1,
		SpawnGroups: map[uint32]*content.SpawnGroup{
			5: {ID: 5, Spawns: map[uint32]uint16{1: 2, 99: 1}},
			6: {ID: 6, Spawns: map[uint32]uint16{98: 1}},
		},
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})

	got, err := New(reg).GetComposed(1000, 3, content.NewIDSet(1))
	require.NoError(t, err)

	require.Contains(t, got.SpawnGroups, uint32(5))
	assert.Equal(t, map[uint32]uint16{1: 2}, got.SpawnGroups[5].Spawns,
		"partially missing references pruned")
	assert.NotContains(t, got.SpawnGroups, uint32(6),
		"group with no valid spawns removed")
}

func TestGetComposed_SpawnLocationGroupRepair(t *testing.T) {
	zone := &content.ZoneDefinition{
		ID: 1000, DynamicMapID: 3,
		Spawns: map[uint32]*content.Spawn{1: {SpeciesID: 401}},
		SpawnGroups: map[uint32]*content.SpawnGroup{
			5: {ID: 5, Spawns: map[uint32]uint16{1: 1}},
		},
		SpawnLocationGroups: map[uint32]*content.SpawnLocationGroup{
			20: {ID: 20, GroupIDs: content.NewIDSet(5, 6)},
			21: {ID: 21, GroupIDs: content.NewIDSet(6)},
		},
	}
	// Introduces group 6 referencing only a missing spawn, so the repair
	// removes it and the location groups see it vanish.
	partial := &content.ZonePartial{
		ID: 1,
		SpawnGroups: map[uint32]*content.SpawnGroup{
			6: {ID: 6, Spawns: map[uint32]uint16{99: 1}},
		},
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})

	got, err := New(reg).GetComposed(1000, 3, content.NewIDSet(1))
	require.NoError(t, err)

	require.Contains(t, got.SpawnLocationGroups, uint32(20))
	assert.Equal(t, []uint32{5}, got.SpawnLocationGroups[20].GroupIDs.Sorted(),
		"missing group reference pruned")
	assert.NotContains(t, got.SpawnLocationGroups, uint32(21),
		"location group with no valid groups removed")
	assert.Equal(t, []uint32{5, 6}, zone.SpawnLocationGroups[20].GroupIDs.Sorted(),
		"canonical untouched")
}

func TestGetComposed_ResultIsIndependentlyOwned(t *testing.T) {
	zone := &content.ZoneDefinition{
		ID: 1000, DynamicMapID: 3,
		Spawns: map[uint32]*content.Spawn{1: {SpeciesID: 401}},
	}
	partial := &content.ZonePartial{
		ID:     1,
		Spawns: map[uint32]*content.Spawn{2: {SpeciesID: 500}},
	}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})
	c := New(reg)

	first, err := c.GetComposed(1000, 3, content.NewIDSet(1))
	require.NoError(t, err)

	first.Spawns[1].SpeciesID = 999
	first.Spawns[2].SpeciesID = 999

	second, err := c.GetComposed(1000, 3, content.NewIDSet(1))
	require.NoError(t, err)
	assert.Equal(t, uint32(401), second.Spawns[1].SpeciesID, "no sharing with the canonical zone")
	assert.Equal(t, uint32(500), second.Spawns[2].SpeciesID, "no sharing with registry-owned partials")
}

func TestApplyPartial_RefusesCanonical(t *testing.T) {
	zone := &content.ZoneDefinition{ID: 1000, DynamicMapID: 3}
	partial := &content.ZonePartial{ID: 1, DropSetIDs: content.NewIDSet(5)}
	reg := newReg(t, []*content.ZoneDefinition{zone}, []*content.ZonePartial{partial})
	c := New(reg)

	err := c.ApplyPartial(zone, 1)
	errutil.AssertErrorCode(t, err, "invalid_partial")

	clone := zone.Clone()
	require.NoError(t, c.ApplyPartial(clone, 1))
	assert.True(t, clone.DropSetIDs.Contains(5))
}

func TestApplyPartial_BadArguments(t *testing.T) {
	zone := &content.ZoneDefinition{ID: 1000, DynamicMapID: 3}
	reg := newReg(t, []*content.ZoneDefinition{zone}, nil)
	c := New(reg)

	errutil.AssertErrorCode(t, c.ApplyPartial(nil, 1), "invalid_partial")
	errutil.AssertErrorCode(t, c.ApplyPartial(zone.Clone(), 0), "invalid_partial")
	errutil.AssertErrorCode(t, c.ApplyPartial(zone.Clone(), 42), "invalid_partial")
}
