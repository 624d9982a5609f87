// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import "fmt"

// ZoneDefinition is the canonical world-map definition, keyed registry-wide
// by the (ID, DynamicMapID) pair. A zone reused across several dynamic maps
// appears once per pair.
type ZoneDefinition struct {
	ID           uint32 `yaml:"id" json:"id"`
	DynamicMapID uint32 `yaml:"dynamic_map_id" json:"dynamic_map_id"`
	Global       bool   `yaml:"global,omitempty" json:"global,omitempty"`
	GroupID      uint32 `yaml:"group_id,omitempty" json:"group_id,omitempty"`

	StartingX        float32 `yaml:"starting_x,omitempty" json:"starting_x,omitempty"`
	StartingY        float32 `yaml:"starting_y,omitempty" json:"starting_y,omitempty"`
	StartingRotation float32 `yaml:"starting_rotation,omitempty" json:"starting_rotation,omitempty"`

	NPCs    []*NPCPlacement    `yaml:"npcs,omitempty" json:"npcs,omitempty"`
	Objects []*ObjectPlacement `yaml:"objects,omitempty" json:"objects,omitempty"`

	Spawns              map[uint32]*Spawn              `yaml:"spawns,omitempty" json:"spawns,omitempty"`
	SpawnGroups         map[uint32]*SpawnGroup         `yaml:"spawn_groups,omitempty" json:"spawn_groups,omitempty"`
	SpawnLocationGroups map[uint32]*SpawnLocationGroup `yaml:"spawn_location_groups,omitempty" json:"spawn_location_groups,omitempty"`
	PlasmaSpawns        map[uint32]*PlasmaSpawn        `yaml:"plasma_spawns,omitempty" json:"plasma_spawns,omitempty"`
	Spots               map[uint32]*Spot               `yaml:"spots,omitempty" json:"spots,omitempty"`

	Triggers []*Trigger `yaml:"triggers,omitempty" json:"triggers,omitempty"`

	DropSetIDs     IDSet `yaml:"drop_set_ids,omitempty" json:"drop_set_ids,omitempty"`
	SkillWhitelist IDSet `yaml:"skill_whitelist,omitempty" json:"skill_whitelist,omitempty"`
	SkillBlacklist IDSet `yaml:"skill_blacklist,omitempty" json:"skill_blacklist,omitempty"`
}

// Label renders the zone id for log and error messages, including the
// dynamic map id only when it differs.
func (z *ZoneDefinition) Label() string {
	if z.ID != z.DynamicMapID {
		return fmt.Sprintf("%d (%d)", z.ID, z.DynamicMapID)
	}
	return fmt.Sprintf("%d", z.ID)
}

// Clone returns a deep copy of the zone. The composition layer works on
// clones exclusively; canonical definitions stay registry-owned and shared.
func (z *ZoneDefinition) Clone() *ZoneDefinition {
	if z == nil {
		return nil
	}
	out := *z

	if z.NPCs != nil {
		out.NPCs = make([]*NPCPlacement, len(z.NPCs))
		for i, npc := range z.NPCs {
			out.NPCs[i] = npc.Clone()
		}
	}
	if z.Objects != nil {
		out.Objects = make([]*ObjectPlacement, len(z.Objects))
		for i, obj := range z.Objects {
			out.Objects[i] = obj.Clone()
		}
	}
	if z.Spawns != nil {
		out.Spawns = make(map[uint32]*Spawn, len(z.Spawns))
		for id, s := range z.Spawns {
			out.Spawns[id] = s.Clone()
		}
	}
	if z.SpawnGroups != nil {
		out.SpawnGroups = make(map[uint32]*SpawnGroup, len(z.SpawnGroups))
		for id, g := range z.SpawnGroups {
			out.SpawnGroups[id] = g.Clone()
		}
	}
	if z.SpawnLocationGroups != nil {
		out.SpawnLocationGroups = make(map[uint32]*SpawnLocationGroup, len(z.SpawnLocationGroups))
		for id, g := range z.SpawnLocationGroups {
			out.SpawnLocationGroups[id] = g.Clone()
		}
	}
	if z.PlasmaSpawns != nil {
		out.PlasmaSpawns = make(map[uint32]*PlasmaSpawn, len(z.PlasmaSpawns))
		for id, p := range z.PlasmaSpawns {
			out.PlasmaSpawns[id] = p.Clone()
		}
	}
	if z.Spots != nil {
		out.Spots = make(map[uint32]*Spot, len(z.Spots))
		for id, s := range z.Spots {
			out.Spots[id] = s.Clone()
		}
	}
	if z.Triggers != nil {
		out.Triggers = make([]*Trigger, len(z.Triggers))
		for i, t := range z.Triggers {
			out.Triggers[i] = t.Clone()
		}
	}
	out.DropSetIDs = z.DropSetIDs.Clone()
	out.SkillWhitelist = z.SkillWhitelist.Clone()
	out.SkillBlacklist = z.SkillBlacklist.Clone()

	return &out
}

// NPCPlacement positions an NPC in a zone, either at a named spot or at
// explicit coordinates when SpotID is zero. An entry with ID zero acts as a
// pure delete when merged from a partial.
type NPCPlacement struct {
	ID       uint32    `yaml:"id" json:"id"`
	SpotID   uint32    `yaml:"spot_id,omitempty" json:"spot_id,omitempty"`
	X        float32   `yaml:"x,omitempty" json:"x,omitempty"`
	Y        float32   `yaml:"y,omitempty" json:"y,omitempty"`
	Rotation float32   `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Actions  []*Action `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// Clone returns an independent copy of the placement.
func (n *NPCPlacement) Clone() *NPCPlacement {
	if n == nil {
		return nil
	}
	out := *n
	out.Actions = cloneActions(n.Actions)
	return &out
}

// ObjectPlacement positions an interactive object in a zone. Placement and
// delete semantics match NPCPlacement.
type ObjectPlacement struct {
	ID       uint32    `yaml:"id" json:"id"`
	SpotID   uint32    `yaml:"spot_id,omitempty" json:"spot_id,omitempty"`
	X        float32   `yaml:"x,omitempty" json:"x,omitempty"`
	Y        float32   `yaml:"y,omitempty" json:"y,omitempty"`
	Rotation float32   `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	State    uint8     `yaml:"state,omitempty" json:"state,omitempty"`
	Actions  []*Action `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// Clone returns an independent copy of the placement.
func (o *ObjectPlacement) Clone() *ObjectPlacement {
	if o == nil {
		return nil
	}
	out := *o
	out.Actions = cloneActions(o.Actions)
	return &out
}

// PlasmaSpawn is a minigame pickup point with separate action branches for
// success and failure.
type PlasmaSpawn struct {
	SpotID         uint32    `yaml:"spot_id,omitempty" json:"spot_id,omitempty"`
	X              float32   `yaml:"x,omitempty" json:"x,omitempty"`
	Y              float32   `yaml:"y,omitempty" json:"y,omitempty"`
	PointCount     uint8     `yaml:"point_count,omitempty" json:"point_count,omitempty"`
	SuccessActions []*Action `yaml:"success_actions,omitempty" json:"success_actions,omitempty"`
	FailActions    []*Action `yaml:"fail_actions,omitempty" json:"fail_actions,omitempty"`
}

// Clone returns an independent copy of the plasma spawn.
func (p *PlasmaSpawn) Clone() *PlasmaSpawn {
	if p == nil {
		return nil
	}
	out := *p
	out.SuccessActions = cloneActions(p.SuccessActions)
	out.FailActions = cloneActions(p.FailActions)
	return &out
}

// Spot is a named area of the zone map with enter and leave action
// sequences.
type Spot struct {
	MatchBase    bool      `yaml:"match_base,omitempty" json:"match_base,omitempty"`
	Actions      []*Action `yaml:"actions,omitempty" json:"actions,omitempty"`
	LeaveActions []*Action `yaml:"leave_actions,omitempty" json:"leave_actions,omitempty"`
}

// Clone returns an independent copy of the spot.
func (s *Spot) Clone() *Spot {
	if s == nil {
		return nil
	}
	out := *s
	out.Actions = cloneActions(s.Actions)
	out.LeaveActions = cloneActions(s.LeaveActions)
	return &out
}
