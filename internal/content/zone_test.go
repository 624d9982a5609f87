// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleZone() *ZoneDefinition {
	return &ZoneDefinition{
		ID:           1000,
		DynamicMapID: 1,
		NPCs: []*NPCPlacement{
			{ID: 10, SpotID: 7, Actions: []*Action{{Kind: ActionStartEvent}}},
		},
		Objects: []*ObjectPlacement{
			{ID: 20, X: 100, Y: 100},
		},
		Spawns: map[uint32]*Spawn{
			1: {SpeciesID: 401, Level: 10},
		},
		SpawnGroups: map[uint32]*SpawnGroup{
			5: {ID: 5, Spawns: map[uint32]uint16{1: 3}},
		},
		SpawnLocationGroups: map[uint32]*SpawnLocationGroup{
			9: {ID: 9, GroupIDs: NewIDSet(5), Locations: []*Rectangle{{X: 1, Y: 2, Width: 3, Height: 4}}},
		},
		Spots: map[uint32]*Spot{
			7: {Actions: []*Action{{Kind: ActionDisplayMessage}}},
		},
		Triggers: []*Trigger{
			{Kind: TriggerOnZoneIn, Actions: []*Action{{Kind: ActionDisplayMessage}}},
		},
		DropSetIDs:     NewIDSet(100),
		SkillWhitelist: NewIDSet(200),
	}
}

func TestZoneDefinition_Label(t *testing.T) {
	assert.Equal(t, "1000 (1)", sampleZone().Label())
	assert.Equal(t, "1000", (&ZoneDefinition{ID: 1000, DynamicMapID: 1000}).Label())
}

func TestZoneDefinition_CloneIsDeep(t *testing.T) {
	zone := sampleZone()
	clone := zone.Clone()
	require.NotSame(t, zone, clone)

	clone.NPCs[0].ID = 999
	clone.NPCs[0].Actions[0].Kind = ActionDelay
	clone.Objects[0].X = -1
	clone.Spawns[1].SpeciesID = 999
	clone.SpawnGroups[5].Spawns[1] = 99
	clone.SpawnLocationGroups[9].GroupIDs.Insert(77)
	clone.SpawnLocationGroups[9].Locations[0].Width = 99
	clone.Spots[7].Actions[0].Kind = ActionDelay
	clone.Triggers[0].Actions[0].Kind = ActionDelay
	clone.DropSetIDs.Insert(101)
	clone.SkillWhitelist.Remove(200)

	assert.Equal(t, uint32(10), zone.NPCs[0].ID)
	assert.Equal(t, ActionStartEvent, zone.NPCs[0].Actions[0].Kind)
	assert.Equal(t, float32(100), zone.Objects[0].X)
	assert.Equal(t, uint32(401), zone.Spawns[1].SpeciesID)
	assert.Equal(t, uint16(3), zone.SpawnGroups[5].Spawns[1])
	assert.False(t, zone.SpawnLocationGroups[9].GroupIDs.Contains(77))
	assert.Equal(t, float32(3), zone.SpawnLocationGroups[9].Locations[0].Width)
	assert.Equal(t, ActionDisplayMessage, zone.Spots[7].Actions[0].Kind)
	assert.Equal(t, ActionDisplayMessage, zone.Triggers[0].Actions[0].Kind)
	assert.False(t, zone.DropSetIDs.Contains(101))
	assert.True(t, zone.SkillWhitelist.Contains(200))
}

func TestZoneDefinition_CloneNil(t *testing.T) {
	var zone *ZoneDefinition
	assert.Nil(t, zone.Clone())
}

func TestAction_CloneNestedSequences(t *testing.T) {
	action := &Action{
		Kind: ActionDelay,
		Delay: &DelayParams{
			Duration: 30,
			Actions: []*Action{
				{Kind: ActionSpawn, Spawn: &SpawnParams{
					SpawnGroupIDs: NewIDSet(1),
					DefeatActions: []*Action{{Kind: ActionGrantXP}},
				}},
			},
		},
	}

	clone := action.Clone()
	clone.Delay.Actions[0].Spawn.DefeatActions[0].Kind = ActionDisplayMessage
	clone.Delay.Actions[0].Spawn.SpawnGroupIDs.Insert(2)

	assert.Equal(t, ActionGrantXP, action.Delay.Actions[0].Spawn.DefeatActions[0].Kind)
	assert.False(t, action.Delay.Actions[0].Spawn.SpawnGroupIDs.Contains(2))
}

func TestZoneInstanceParams_JoinsInstance(t *testing.T) {
	assert.True(t, (&ZoneInstanceParams{Mode: JoinSelf}).JoinsInstance())
	assert.True(t, (&ZoneInstanceParams{Mode: JoinClan}).JoinsInstance())
	assert.True(t, (&ZoneInstanceParams{Mode: JoinTeam}).JoinsInstance())
	assert.True(t, (&ZoneInstanceParams{Mode: JoinTeamPvP}).JoinsInstance())
	assert.False(t, (&ZoneInstanceParams{Mode: JoinExisting}).JoinsInstance())
	assert.False(t, (&ZoneInstanceParams{}).JoinsInstance())
}

func TestTrigger_AutoContext(t *testing.T) {
	playerSourced := []TriggerKind{
		TriggerOnDeath, TriggerOnDiasporaCapture, TriggerOnFlagSet,
		TriggerOnPvPBaseCapture, TriggerOnPvPComplete, TriggerOnRevival,
		TriggerOnZoneIn, TriggerOnZoneOut,
	}
	for _, kind := range playerSourced {
		assert.False(t, (&Trigger{Kind: kind}).AutoContext(), "kind %s", kind)
	}

	systemSourced := []TriggerKind{
		TriggerOnSetup, TriggerOnTime, TriggerOnSystemTime, TriggerOnInstanceExpiration,
	}
	for _, kind := range systemSourced {
		assert.True(t, (&Trigger{Kind: kind}).AutoContext(), "kind %s", kind)
	}
}

func TestZoneInstance_Contains(t *testing.T) {
	inst := &ZoneInstance{
		ID:            1,
		ZoneIDs:       []uint32{1000, 1001},
		DynamicMapIDs: []uint32{1, 2},
	}

	assert.True(t, inst.Contains(1000, 1))
	assert.False(t, inst.Contains(1000, 2))
	assert.True(t, inst.Contains(1001, 0), "zero dynamic map matches any")
	assert.False(t, inst.Contains(1002, 0))
}

func TestZonePartial_HasPositionData(t *testing.T) {
	assert.False(t, (&ZonePartial{DropSetIDs: NewIDSet(1)}).HasPositionData())
	assert.True(t, (&ZonePartial{NPCs: []*NPCPlacement{{ID: 1}}}).HasPositionData())
	assert.True(t, (&ZonePartial{DynamicMapIDs: NewIDSet(1)}).HasPositionData())
	assert.True(t, (&ZonePartial{Spots: map[uint32]*Spot{1: {}}}).HasPositionData())
}
