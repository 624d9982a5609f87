// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import "github.com/invopop/jsonschema"

// SpawnCategory classifies a spawn entry.
type SpawnCategory string

// Spawn categories supported by the content format.
const (
	SpawnNormal SpawnCategory = "normal"
	SpawnBoss   SpawnCategory = "boss"
)

// JSONSchema restricts the spawn category to the closed enumeration.
func (SpawnCategory) JSONSchema() *jsonschema.Schema {
	return enumSchema(string(SpawnNormal), string(SpawnBoss))
}

// Spawn describes one spawnable enemy entry in a zone or partial. The
// species id must resolve through the external catalog; entries carrying a
// boss group must be categorized as boss spawns.
type Spawn struct {
	SpeciesID uint32        `yaml:"species_id" json:"species_id"`
	Level     int8          `yaml:"level,omitempty" json:"level,omitempty"`
	Category  SpawnCategory `yaml:"category,omitempty" json:"category,omitempty"`
	BossGroup uint32        `yaml:"boss_group,omitempty" json:"boss_group,omitempty"`
	AIScript  string        `yaml:"ai_script,omitempty" json:"ai_script,omitempty"`
	LogicID   uint16        `yaml:"logic_id,omitempty" json:"logic_id,omitempty"`
}

// Clone returns an independent copy of the spawn.
func (s *Spawn) Clone() *Spawn {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

// SpawnGroup aggregates spawns by id with per-spawn counts and the action
// lists fired when the group spawns or is defeated.
type SpawnGroup struct {
	ID            uint32            `yaml:"id" json:"id"`
	Spawns        map[uint32]uint16 `yaml:"spawns,omitempty" json:"spawns,omitempty"`
	RespawnTime   float32           `yaml:"respawn_time,omitempty" json:"respawn_time,omitempty"`
	SpawnActions  []*Action         `yaml:"spawn_actions,omitempty" json:"spawn_actions,omitempty"`
	DefeatActions []*Action         `yaml:"defeat_actions,omitempty" json:"defeat_actions,omitempty"`
}

// Clone returns an independent copy of the group.
func (g *SpawnGroup) Clone() *SpawnGroup {
	if g == nil {
		return nil
	}
	out := *g
	if g.Spawns != nil {
		out.Spawns = make(map[uint32]uint16, len(g.Spawns))
		for id, count := range g.Spawns {
			out.Spawns[id] = count
		}
	}
	out.SpawnActions = cloneActions(g.SpawnActions)
	out.DefeatActions = cloneActions(g.DefeatActions)
	return &out
}

// SpawnLocationGroup ties spawn groups to the locations they may spawn at.
type SpawnLocationGroup struct {
	ID        uint32       `yaml:"id" json:"id"`
	GroupIDs  IDSet        `yaml:"group_ids,omitempty" json:"group_ids,omitempty"`
	SpotIDs   IDSet        `yaml:"spot_ids,omitempty" json:"spot_ids,omitempty"`
	Locations []*Rectangle `yaml:"locations,omitempty" json:"locations,omitempty"`
}

// Clone returns an independent copy of the location group.
func (g *SpawnLocationGroup) Clone() *SpawnLocationGroup {
	if g == nil {
		return nil
	}
	out := *g
	out.GroupIDs = g.GroupIDs.Clone()
	out.SpotIDs = g.SpotIDs.Clone()
	if g.Locations != nil {
		out.Locations = make([]*Rectangle, len(g.Locations))
		for i, loc := range g.Locations {
			c := *loc
			out.Locations[i] = &c
		}
	}
	return &out
}

// Rectangle is an axis-aligned spawn area.
type Rectangle struct {
	X      float32 `yaml:"x" json:"x"`
	Y      float32 `yaml:"y" json:"y"`
	Width  float32 `yaml:"width" json:"width"`
	Height float32 `yaml:"height" json:"height"`
}
