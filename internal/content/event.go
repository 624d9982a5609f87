// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import "github.com/invopop/jsonschema"

// EventType selects an event record's behavior.
type EventType string

// Event types supported by the content format.
const (
	EventFork           EventType = "fork"
	EventNPCMessage     EventType = "npc_message"
	EventExNPCMessage   EventType = "ex_npc_message"
	EventMultitalk      EventType = "multitalk"
	EventPrompt         EventType = "prompt"
	EventPerformActions EventType = "perform_actions"
	EventOpenMenu       EventType = "open_menu"
	EventPlayScene      EventType = "play_scene"
	EventDirection      EventType = "direction"
)

// JSONSchema restricts the event type to the closed enumeration.
func (EventType) JSONSchema() *jsonschema.Schema {
	return enumSchema(
		string(EventFork), string(EventNPCMessage), string(EventExNPCMessage),
		string(EventMultitalk), string(EventPrompt), string(EventPerformActions),
		string(EventOpenMenu), string(EventPlayScene), string(EventDirection),
	)
}

// Event is an interaction script step keyed by a unique string id. Only
// perform_actions events embed an action sequence; it is validated in event
// mode (ordering advisory off, context checks on).
type Event struct {
	ID      string    `yaml:"id" json:"id"`
	Type    EventType `yaml:"type" json:"type"`
	Next    string    `yaml:"next,omitempty" json:"next,omitempty"`
	Actions []*Action `yaml:"actions,omitempty" json:"actions,omitempty"`
}
