// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import "github.com/invopop/jsonschema"

// TriggerKind identifies a zone trigger event.
type TriggerKind string

// Trigger kinds supported by the content format.
const (
	TriggerOnSetup              TriggerKind = "on_setup"
	TriggerOnTime               TriggerKind = "on_time"
	TriggerOnSystemTime         TriggerKind = "on_system_time"
	TriggerOnDeath              TriggerKind = "on_death"
	TriggerOnDiasporaCapture    TriggerKind = "on_diaspora_base_capture"
	TriggerOnFlagSet            TriggerKind = "on_flag_set"
	TriggerOnPvPBaseCapture     TriggerKind = "on_pvp_base_capture"
	TriggerOnPvPComplete        TriggerKind = "on_pvp_complete"
	TriggerOnRevival            TriggerKind = "on_revival"
	TriggerOnZoneIn             TriggerKind = "on_zone_in"
	TriggerOnZoneOut            TriggerKind = "on_zone_out"
	TriggerOnInstanceExpiration TriggerKind = "on_instance_expiration"
)

// JSONSchema restricts the trigger kind to the closed enumeration.
func (TriggerKind) JSONSchema() *jsonschema.Schema {
	return enumSchema(
		string(TriggerOnSetup), string(TriggerOnTime),
		string(TriggerOnSystemTime), string(TriggerOnDeath),
		string(TriggerOnDiasporaCapture), string(TriggerOnFlagSet),
		string(TriggerOnPvPBaseCapture), string(TriggerOnPvPComplete),
		string(TriggerOnRevival), string(TriggerOnZoneIn),
		string(TriggerOnZoneOut), string(TriggerOnInstanceExpiration),
	)
}

// Trigger fires an action sequence when a zone event occurs.
type Trigger struct {
	Kind    TriggerKind `yaml:"kind" json:"kind"`
	Value   int32       `yaml:"value,omitempty" json:"value,omitempty"`
	Actions []*Action   `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// AutoContext reports whether the trigger's actions execute without a
// directly tied player actor. Only the kinds fired by a specific player in
// the zone carry a player context; everything else is system driven.
func (t *Trigger) AutoContext() bool {
	switch t.Kind {
	case TriggerOnDeath,
		TriggerOnDiasporaCapture,
		TriggerOnFlagSet,
		TriggerOnPvPBaseCapture,
		TriggerOnPvPComplete,
		TriggerOnRevival,
		TriggerOnZoneIn,
		TriggerOnZoneOut:
		return false
	default:
		return true
	}
}

// Clone returns an independent copy of the trigger.
func (t *Trigger) Clone() *Trigger {
	if t == nil {
		return nil
	}
	out := *t
	out.Actions = cloneActions(t.Actions)
	return &out
}
