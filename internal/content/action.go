// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import "github.com/invopop/jsonschema"

// ActionKind identifies an action record. The enumeration is closed: the
// loader's validator and the runtime dispatch on these values and an
// unlisted kind is rejected at decode time by schema validation.
type ActionKind string

// Action kinds supported by the content format.
const (
	ActionAddRemoveItems   ActionKind = "add_remove_items"
	ActionAddRemoveStatus  ActionKind = "add_remove_status"
	ActionCreateLoot       ActionKind = "create_loot"
	ActionDelay            ActionKind = "delay"
	ActionDisplayMessage   ActionKind = "display_message"
	ActionGrantSkills      ActionKind = "grant_skills"
	ActionGrantXP          ActionKind = "grant_xp"
	ActionPlayBGM          ActionKind = "play_bgm"
	ActionPlaySoundEffect  ActionKind = "play_sound_effect"
	ActionRunScript        ActionKind = "run_script"
	ActionSetHomepoint     ActionKind = "set_homepoint"
	ActionSetNPCState      ActionKind = "set_npc_state"
	ActionSpawn            ActionKind = "spawn"
	ActionSpecialDirection ActionKind = "special_direction"
	ActionStageEffect      ActionKind = "stage_effect"
	ActionStartEvent       ActionKind = "start_event"
	ActionUpdateComp       ActionKind = "update_comp"
	ActionUpdateFlag       ActionKind = "update_flag"
	ActionUpdateLNC        ActionKind = "update_lnc"
	ActionUpdatePoints     ActionKind = "update_points"
	ActionUpdateQuest      ActionKind = "update_quest"
	ActionUpdateZoneFlags  ActionKind = "update_zone_flags"
	ActionZoneChange       ActionKind = "zone_change"
	ActionZoneInstance     ActionKind = "zone_instance"
)

// JSONSchema restricts the kind field to the closed enumeration.
func (ActionKind) JSONSchema() *jsonschema.Schema {
	return enumSchema(
		string(ActionAddRemoveItems), string(ActionAddRemoveStatus),
		string(ActionCreateLoot), string(ActionDelay),
		string(ActionDisplayMessage), string(ActionGrantSkills),
		string(ActionGrantXP), string(ActionPlayBGM),
		string(ActionPlaySoundEffect), string(ActionRunScript),
		string(ActionSetHomepoint), string(ActionSetNPCState),
		string(ActionSpawn), string(ActionSpecialDirection),
		string(ActionStageEffect), string(ActionStartEvent),
		string(ActionUpdateComp), string(ActionUpdateFlag),
		string(ActionUpdateLNC), string(ActionUpdatePoints),
		string(ActionUpdateQuest), string(ActionUpdateZoneFlags),
		string(ActionZoneChange), string(ActionZoneInstance),
	)
}

// SourceContext selects which entities an action executes against relative
// to its source.
type SourceContext string

// Source contexts supported by the content format. The zero value is
// treated as ContextInteracting.
const (
	ContextInteracting SourceContext = "interacting"
	ContextSource      SourceContext = "source"
	ContextEnemies     SourceContext = "enemies"
	ContextAll         SourceContext = "all"
)

// JSONSchema restricts the source context to the closed enumeration.
func (SourceContext) JSONSchema() *jsonschema.Schema {
	return enumSchema(
		string(ContextInteracting), string(ContextSource),
		string(ContextEnemies), string(ContextAll),
	)
}

// InstanceJoinMode selects how a zone_instance action moves players.
type InstanceJoinMode string

// Join modes for zone_instance actions.
const (
	JoinSelf     InstanceJoinMode = "join"
	JoinClan     InstanceJoinMode = "clan_join"
	JoinTeam     InstanceJoinMode = "team_join"
	JoinTeamPvP  InstanceJoinMode = "team_pvp"
	JoinExisting InstanceJoinMode = "existing"
)

// JSONSchema restricts the join mode to the closed enumeration.
func (InstanceJoinMode) JSONSchema() *jsonschema.Schema {
	return enumSchema(
		string(JoinSelf), string(JoinClan), string(JoinTeam),
		string(JoinTeamPvP), string(JoinExisting),
	)
}

// Action is one entry in an ordered action sequence. Kind selects which of
// the optional parameter blocks applies; composite kinds (delay, spawn)
// carry nested sequences of their own.
type Action struct {
	Kind          ActionKind    `yaml:"kind" json:"kind"`
	SourceContext SourceContext `yaml:"source_context,omitempty" json:"source_context,omitempty"`
	StopOnFailure bool          `yaml:"stop_on_failure,omitempty" json:"stop_on_failure,omitempty"`

	Delay        *DelayParams        `yaml:"delay,omitempty" json:"delay,omitempty"`
	Spawn        *SpawnParams        `yaml:"spawn,omitempty" json:"spawn,omitempty"`
	ZoneChange   *ZoneChangeParams   `yaml:"zone_change,omitempty" json:"zone_change,omitempty"`
	ZoneInstance *ZoneInstanceParams `yaml:"zone_instance,omitempty" json:"zone_instance,omitempty"`
	Script       *ScriptParams       `yaml:"script,omitempty" json:"script,omitempty"`
}

// DelayParams holds the nested sequence run after a delay elapses.
type DelayParams struct {
	Duration uint32    `yaml:"duration" json:"duration"`
	Actions  []*Action `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// SpawnParams requests spawn groups and carries the sequence fired when the
// spawned enemies are defeated.
type SpawnParams struct {
	SpawnGroupIDs IDSet     `yaml:"spawn_group_ids,omitempty" json:"spawn_group_ids,omitempty"`
	DefeatActions []*Action `yaml:"defeat_actions,omitempty" json:"defeat_actions,omitempty"`
}

// ZoneChangeParams moves the target player to another zone. A zero zone id
// means "current zone" and is exempt from the ordering advisory.
type ZoneChangeParams struct {
	ZoneID       uint32  `yaml:"zone_id" json:"zone_id"`
	DynamicMapID uint32  `yaml:"dynamic_map_id,omitempty" json:"dynamic_map_id,omitempty"`
	X            float32 `yaml:"x,omitempty" json:"x,omitempty"`
	Y            float32 `yaml:"y,omitempty" json:"y,omitempty"`
}

// ZoneInstanceParams creates or joins a zone instance.
type ZoneInstanceParams struct {
	InstanceID uint32           `yaml:"instance_id" json:"instance_id"`
	VariantID  uint32           `yaml:"variant_id,omitempty" json:"variant_id,omitempty"`
	Mode       InstanceJoinMode `yaml:"mode,omitempty" json:"mode,omitempty"`
}

// ScriptParams names a registered custom-action script.
type ScriptParams struct {
	Name string   `yaml:"name" json:"name"`
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`
}

// JoinsInstance reports whether a zone_instance action moves players into an
// instance (the modes covered by the ordering advisory).
func (p *ZoneInstanceParams) JoinsInstance() bool {
	switch p.Mode {
	case JoinSelf, JoinClan, JoinTeam, JoinTeamPvP:
		return true
	default:
		return false
	}
}

// Clone returns an independent copy of the action and its nested sequences.
func (a *Action) Clone() *Action {
	if a == nil {
		return nil
	}
	out := *a
	if a.Delay != nil {
		d := *a.Delay
		d.Actions = cloneActions(a.Delay.Actions)
		out.Delay = &d
	}
	if a.Spawn != nil {
		s := *a.Spawn
		s.SpawnGroupIDs = a.Spawn.SpawnGroupIDs.Clone()
		s.DefeatActions = cloneActions(a.Spawn.DefeatActions)
		out.Spawn = &s
	}
	if a.ZoneChange != nil {
		z := *a.ZoneChange
		out.ZoneChange = &z
	}
	if a.ZoneInstance != nil {
		z := *a.ZoneInstance
		out.ZoneInstance = &z
	}
	if a.Script != nil {
		s := *a.Script
		s.Args = append([]string(nil), a.Script.Args...)
		out.Script = &s
	}
	return &out
}

func cloneActions(actions []*Action) []*Action {
	if actions == nil {
		return nil
	}
	out := make([]*Action, len(actions))
	for i, a := range actions {
		out[i] = a.Clone()
	}
	return out
}
