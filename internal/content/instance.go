// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import "github.com/invopop/jsonschema"

// ZoneInstance groups zones into an enterable instance. ZoneIDs and
// DynamicMapIDs are parallel lists; each pair must resolve to a loaded zone.
type ZoneInstance struct {
	ID            uint32   `yaml:"id" json:"id"`
	Name          string   `yaml:"name,omitempty" json:"name,omitempty"`
	LobbyID       uint32   `yaml:"lobby_id" json:"lobby_id"`
	ZoneIDs       []uint32 `yaml:"zone_ids" json:"zone_ids"`
	DynamicMapIDs []uint32 `yaml:"dynamic_map_ids" json:"dynamic_map_ids"`
}

// Contains reports whether the instance includes the given zone. A zero
// dynamicMapID matches any dynamic map of the zone id.
func (i *ZoneInstance) Contains(zoneID, dynamicMapID uint32) bool {
	for idx, zid := range i.ZoneIDs {
		if zid == zoneID && (dynamicMapID == 0 || i.DynamicMapIDs[idx] == dynamicMapID) {
			return true
		}
	}
	return false
}

// VariantType enumerates the gameplay-mode rulesets an instance variant can
// apply. Each type constrains the number of phase time points.
type VariantType string

// Variant types supported by the content format.
const (
	VariantTimeTrial VariantType = "time_trial"
	VariantPvP       VariantType = "pvp"
	VariantDemonOnly VariantType = "demon_only"
	VariantDiaspora  VariantType = "diaspora"
	VariantMission   VariantType = "mission"
	VariantPentalpha VariantType = "pentalpha"
)

// JSONSchema restricts the variant type to the closed enumeration.
func (VariantType) JSONSchema() *jsonschema.Schema {
	return enumSchema(
		string(VariantTimeTrial), string(VariantPvP),
		string(VariantDemonOnly), string(VariantDiaspora),
		string(VariantMission), string(VariantPentalpha),
	)
}

// MatchType classifies PvP variants for matchmaking.
type MatchType string

// PvP match types.
const (
	MatchFate     MatchType = "fate"
	MatchValhalla MatchType = "valhalla"
	MatchCustom   MatchType = "custom"
)

// JSONSchema restricts the match type to the closed enumeration.
func (MatchType) JSONSchema() *jsonschema.Schema {
	return enumSchema(string(MatchFate), string(MatchValhalla), string(MatchCustom))
}

// PvPParams holds the PvP-specific portion of an instance variant.
type PvPParams struct {
	MatchType         MatchType `yaml:"match_type,omitempty" json:"match_type,omitempty"`
	SpecialMode       bool      `yaml:"special_mode,omitempty" json:"special_mode,omitempty"`
	DefaultInstanceID uint32    `yaml:"default_instance_id,omitempty" json:"default_instance_id,omitempty"`
}

// ZoneInstanceVariant layers a gameplay-mode ruleset onto a zone instance.
// TimePoints are ordered phase boundaries; the required count depends on the
// variant type. PvP-capable variants carry PvP parameters.
type ZoneInstanceVariant struct {
	ID           uint32      `yaml:"id" json:"id"`
	Type         VariantType `yaml:"type" json:"type"`
	SubID        uint32      `yaml:"sub_id,omitempty" json:"sub_id,omitempty"`
	TimePoints   []uint32    `yaml:"time_points,omitempty" json:"time_points,omitempty"`
	XPMultiplier float32     `yaml:"xp_multiplier,omitempty" json:"xp_multiplier,omitempty"`
	PvP          *PvPParams  `yaml:"pvp,omitempty" json:"pvp,omitempty"`
}
