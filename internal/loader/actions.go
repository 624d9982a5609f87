// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package loader

import (
	"fmt"
	"log/slog"

	"github.com/samber/oops"

	"github.com/duskhollow/worldpack/internal/content"
)

// playerRequired lists the action kinds that only make sense against a
// player target. Executing one from an auto context (enemy or system actor)
// is a load-time failure rather than a runtime surprise.
var playerRequired = map[content.ActionKind]struct{}{
	content.ActionAddRemoveItems:   {},
	content.ActionDisplayMessage:   {},
	content.ActionGrantSkills:      {},
	content.ActionGrantXP:          {},
	content.ActionPlayBGM:          {},
	content.ActionPlaySoundEffect:  {},
	content.ActionSetHomepoint:     {},
	content.ActionSpecialDirection: {},
	content.ActionStageEffect:      {},
	content.ActionUpdateComp:       {},
	content.ActionUpdateFlag:       {},
	content.ActionUpdateLNC:        {},
	content.ActionUpdateQuest:      {},
	content.ActionZoneChange:       {},
	content.ActionZoneInstance:     {},
}

// ValidateActions walks an ordered action sequence, recursing into the
// nested sequences of composite kinds. autoContext marks sequences fired
// without a player actor; inEvent disables the ordering advisory only,
// context checks still apply.
func ValidateActions(actions []*content.Action, source string, autoContext, inEvent bool) error {
	count := len(actions)
	for i, action := range actions {
		if i != count-1 && !inEvent && movesPlayerZone(action) {
			// Non-fatal: moving the player mid-sequence drops the rest of
			// the actions when zones live on different channel processes.
			slog.Warn("zone change action encountered mid-sequence outside of an event; "+
				"move it to the end of the sequence to avoid errors on multi-channel setups",
				"source", source)
		}

		autoCtx := autoContext && (action.SourceContext == content.ContextEnemies ||
			action.SourceContext == content.ContextSource)

		switch action.Kind {
		case content.ActionDelay:
			if action.Delay != nil {
				if err := ValidateActions(action.Delay.Actions,
					fmt.Sprintf("%s => Delay Actions", source), autoCtx, false); err != nil {
					return err
				}
			}
		case content.ActionSpawn:
			if action.Spawn != nil {
				if err := ValidateActions(action.Spawn.DefeatActions,
					fmt.Sprintf("%s => Defeat Actions", source), autoCtx, false); err != nil {
					return err
				}
			}
		default:
			if _, required := playerRequired[action.Kind]; required && autoCtx {
				return oops.In("loader").Code("context_violation").
					With("source", source).With("kind", action.Kind).
					New("non-player context with player required action type")
			}
		}
	}

	return nil
}

// movesPlayerZone reports whether an action is covered by the ordering
// advisory: a zone change to a concrete zone, or an instance join.
func movesPlayerZone(action *content.Action) bool {
	switch action.Kind {
	case content.ActionZoneChange:
		return action.ZoneChange != nil && action.ZoneChange.ZoneID != 0
	case content.ActionZoneInstance:
		return action.ZoneInstance != nil && action.ZoneInstance.JoinsInstance()
	default:
		return false
	}
}
