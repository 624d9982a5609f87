// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

// GlobalPartialID is reserved for the pack-wide partial that may only carry
// skill whitelist/blacklist entries and drop set ids. Position data on it is
// ignored with a warning at load time.
const GlobalPartialID uint32 = 0

// ZonePartial is a patch definition merged onto a canonical zone at
// composition time. AutoApply partials are indexed by dynamic map id and
// applied implicitly; the rest must be requested explicitly and, when
// DynamicMapIDs is non-empty, only apply to the listed maps.
type ZonePartial struct {
	ID            uint32 `yaml:"id" json:"id"`
	AutoApply     bool   `yaml:"auto_apply,omitempty" json:"auto_apply,omitempty"`
	DynamicMapIDs IDSet  `yaml:"dynamic_map_ids,omitempty" json:"dynamic_map_ids,omitempty"`

	NPCs    []*NPCPlacement    `yaml:"npcs,omitempty" json:"npcs,omitempty"`
	Objects []*ObjectPlacement `yaml:"objects,omitempty" json:"objects,omitempty"`

	Spawns              map[uint32]*Spawn              `yaml:"spawns,omitempty" json:"spawns,omitempty"`
	SpawnGroups         map[uint32]*SpawnGroup         `yaml:"spawn_groups,omitempty" json:"spawn_groups,omitempty"`
	SpawnLocationGroups map[uint32]*SpawnLocationGroup `yaml:"spawn_location_groups,omitempty" json:"spawn_location_groups,omitempty"`
	Spots               map[uint32]*Spot               `yaml:"spots,omitempty" json:"spots,omitempty"`

	Triggers []*Trigger `yaml:"triggers,omitempty" json:"triggers,omitempty"`

	DropSetIDs     IDSet `yaml:"drop_set_ids,omitempty" json:"drop_set_ids,omitempty"`
	SkillWhitelist IDSet `yaml:"skill_whitelist,omitempty" json:"skill_whitelist,omitempty"`
	SkillBlacklist IDSet `yaml:"skill_blacklist,omitempty" json:"skill_blacklist,omitempty"`
}

// HasPositionData reports whether the partial carries any of the fields that
// are invalid on the global partial.
func (p *ZonePartial) HasPositionData() bool {
	return len(p.DynamicMapIDs) > 0 || len(p.NPCs) > 0 ||
		len(p.Objects) > 0 || len(p.Spots) > 0
}
