// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

// Package compose derives per-context zone snapshots by layering partial
// patch definitions onto canonical zone definitions. Composition is a pure
// function of the registry and the requested partial ids: it never mutates
// registry-owned state, so concurrent calls need no locking.
package compose

import (
	"log/slog"

	"github.com/samber/oops"

	"github.com/duskhollow/worldpack/internal/content"
	"github.com/duskhollow/worldpack/internal/registry"
)

// positionThreshold is the per-axis distance under which a zero-spot
// placement from a partial replaces an existing zero-spot placement.
const positionThreshold = 10.0

// Composer builds composed zone snapshots from a finished registry.
type Composer struct {
	reg *registry.Registry
}

// New creates a composer over a loaded registry.
func New(reg *registry.Registry) *Composer {
	return &Composer{reg: reg}
}

// GetComposed resolves a canonical zone and applies its auto-apply partials
// plus any requested extras. With no applicable partials the canonical
// definition is returned as-is and must be treated as read-only; otherwise
// the result is an independent snapshot owned by the caller.
//
// An unknown zone returns nil without an error, mirroring registry lookup
// semantics. An unresolvable or disallowed extra partial id fails the whole
// call.
func (c *Composer) GetComposed(zoneID, dynamicMapID uint32, extraPartialIDs content.IDSet) (*content.ZoneDefinition, error) {
	zone := c.reg.Zone(zoneID, dynamicMapID)
	if zone == nil {
		return nil, nil
	}

	partialIDs := c.reg.AutoApplyPartials(zone.DynamicMapID)
	if partialIDs == nil {
		partialIDs = content.NewIDSet()
	}

	for extraID := range extraPartialIDs {
		partial := c.reg.Partial(extraID)
		if partial == nil || partial.AutoApply ||
			(len(partial.DynamicMapIDs) > 0 && !partial.DynamicMapIDs.Contains(zone.DynamicMapID)) {
			CompositionsTotal.WithLabelValues("rejected").Inc()
			return nil, oops.In("compose").Code("invalid_partial").
				With("zone", zone.Label()).With("partial", extraID).
				New("partial cannot be applied to zone")
		}
		partialIDs.Insert(extraID)
	}

	if len(partialIDs) == 0 {
		CompositionsTotal.WithLabelValues("canonical").Inc()
		return zone, nil
	}

	composed := zone.Clone()

	// Ascending id order keeps keyed-overwrite precedence deterministic:
	// the highest partial id wins a conflicting key.
	for _, partialID := range partialIDs.Sorted() {
		partial := c.reg.Partial(partialID)
		if partial == nil {
			CompositionsTotal.WithLabelValues("rejected").Inc()
			return nil, oops.In("compose").Code("invalid_partial").
				With("zone", zone.Label()).With("partial", partialID).
				New("unknown partial id")
		}
		applyPartial(composed, partial, true)
	}

	repairSpawnReferences(composed)

	CompositionsTotal.WithLabelValues("composed").Inc()
	return composed, nil
}

// ApplyPartial merges one partial into an already composed snapshot.
// Applying onto the canonical registry-owned definition is refused; callers
// must work on a snapshot from GetComposed or Clone.
func (c *Composer) ApplyPartial(zone *content.ZoneDefinition, partialID uint32) error {
	if zone == nil || partialID == content.GlobalPartialID {
		return oops.In("compose").Code("invalid_partial").New("no zone or partial id given")
	}

	if c.reg.Zone(zone.ID, zone.DynamicMapID) == zone {
		return oops.In("compose").Code("invalid_partial").With("zone", zone.Label()).
			New("attempted to apply partial to canonical zone definition")
	}

	partial := c.reg.Partial(partialID)
	if partial == nil {
		return oops.In("compose").Code("invalid_partial").With("partial", partialID).
			New("unknown partial id")
	}

	applyPartial(zone, partial, true)
	return nil
}

// applyPartial merges partial into zone. Inserted records are cloned so the
// snapshot never shares substructures with registry-owned partials.
func applyPartial(zone *content.ZoneDefinition, partial *content.ZonePartial, positionReplace bool) {
	if zone.DropSetIDs == nil && len(partial.DropSetIDs) > 0 {
		zone.DropSetIDs = content.NewIDSet()
	}
	for id := range partial.DropSetIDs {
		zone.DropSetIDs.Insert(id)
	}

	if zone.SkillWhitelist == nil && len(partial.SkillWhitelist) > 0 {
		zone.SkillWhitelist = content.NewIDSet()
	}
	for id := range partial.SkillWhitelist {
		zone.SkillWhitelist.Insert(id)
	}

	if zone.SkillBlacklist == nil && len(partial.SkillBlacklist) > 0 {
		zone.SkillBlacklist = content.NewIDSet()
	}
	for id := range partial.SkillBlacklist {
		zone.SkillBlacklist.Insert(id)
	}

	for _, npc := range partial.NPCs {
		if positionReplace {
			zone.NPCs = removeNPCMatches(zone.NPCs, npc)
		}
		// A zero id is a pure delete: matched placements are removed and
		// nothing is reinserted.
		if npc.ID != 0 {
			zone.NPCs = append(zone.NPCs, npc.Clone())
		}
	}

	for _, obj := range partial.Objects {
		if positionReplace {
			zone.Objects = removeObjectMatches(zone.Objects, obj)
		}
		if obj.ID != 0 {
			zone.Objects = append(zone.Objects, obj.Clone())
		}
	}

	if zone.Spawns == nil && len(partial.Spawns) > 0 {
		zone.Spawns = make(map[uint32]*content.Spawn, len(partial.Spawns))
	}
	for id, spawn := range partial.Spawns {
		zone.Spawns[id] = spawn.Clone()
	}

	if zone.SpawnGroups == nil && len(partial.SpawnGroups) > 0 {
		zone.SpawnGroups = make(map[uint32]*content.SpawnGroup, len(partial.SpawnGroups))
	}
	for id, group := range partial.SpawnGroups {
		zone.SpawnGroups[id] = group.Clone()
	}

	if zone.SpawnLocationGroups == nil && len(partial.SpawnLocationGroups) > 0 {
		zone.SpawnLocationGroups = make(map[uint32]*content.SpawnLocationGroup, len(partial.SpawnLocationGroups))
	}
	for id, group := range partial.SpawnLocationGroups {
		zone.SpawnLocationGroups[id] = group.Clone()
	}

	if zone.Spots == nil && len(partial.Spots) > 0 {
		zone.Spots = make(map[uint32]*content.Spot, len(partial.Spots))
	}
	for id, spot := range partial.Spots {
		zone.Spots[id] = spot.Clone()
	}

	for _, trigger := range partial.Triggers {
		zone.Triggers = append(zone.Triggers, trigger.Clone())
	}
}

// removeNPCMatches drops placements the incoming record replaces: same
// non-zero spot id, or zero-spot placements within positionThreshold on
// both axes.
func removeNPCMatches(npcs []*content.NPCPlacement, incoming *content.NPCPlacement) []*content.NPCPlacement {
	out := npcs[:0]
	for _, existing := range npcs {
		if npcMatches(existing, incoming) {
			continue
		}
		out = append(out, existing)
	}
	return out
}

func npcMatches(existing, incoming *content.NPCPlacement) bool {
	if incoming.SpotID != 0 {
		return existing.SpotID == incoming.SpotID
	}
	return existing.SpotID == 0 &&
		absDiff(existing.X, incoming.X) < positionThreshold &&
		absDiff(existing.Y, incoming.Y) < positionThreshold
}

func removeObjectMatches(objects []*content.ObjectPlacement, incoming *content.ObjectPlacement) []*content.ObjectPlacement {
	out := objects[:0]
	for _, existing := range objects {
		if objectMatches(existing, incoming) {
			continue
		}
		out = append(out, existing)
	}
	return out
}

func objectMatches(existing, incoming *content.ObjectPlacement) bool {
	if incoming.SpotID != 0 {
		return existing.SpotID == incoming.SpotID
	}
	return existing.SpotID == 0 &&
		absDiff(existing.X, incoming.X) < positionThreshold &&
		absDiff(existing.Y, incoming.Y) < positionThreshold
}

func absDiff(a, b float32) float64 {
	d := float64(a) - float64(b)
	if d < 0 {
		return -d
	}
	return d
}

// repairSpawnReferences restores referential integrity after merging:
// spawn groups lose references to spawns the partials removed, groups left
// with no valid spawns are dropped, and the same two-tier repair runs for
// spawn location groups against the surviving spawn groups. Partials are
// never validated against a concrete zone at load time, so this pass is
// what guarantees a consistent snapshot.
func repairSpawnReferences(zone *content.ZoneDefinition) {
	var groupRemoves []uint32
	for groupID, group := range zone.SpawnGroups {
		var missing []uint32
		for spawnID := range group.Spawns {
			if _, ok := zone.Spawns[spawnID]; !ok {
				missing = append(missing, spawnID)
			}
		}
		if len(missing) == 0 {
			continue
		}

		if len(missing) < len(group.Spawns) {
			pruned := group.Clone()
			for _, spawnID := range missing {
				delete(pruned.Spawns, spawnID)
			}
			zone.SpawnGroups[groupID] = pruned
		} else {
			groupRemoves = append(groupRemoves, groupID)
		}
	}

	for _, groupID := range groupRemoves {
		slog.Debug("removing empty spawn group from composed zone",
			"group", groupID, "zone", zone.Label())
		delete(zone.SpawnGroups, groupID)
	}

	var locationRemoves []uint32
	for locationID, location := range zone.SpawnLocationGroups {
		var missing []uint32
		for groupID := range location.GroupIDs {
			if _, ok := zone.SpawnGroups[groupID]; !ok {
				missing = append(missing, groupID)
			}
		}
		if len(missing) == 0 {
			continue
		}

		if len(missing) < len(location.GroupIDs) {
			pruned := location.Clone()
			for _, groupID := range missing {
				pruned.GroupIDs.Remove(groupID)
			}
			zone.SpawnLocationGroups[locationID] = pruned
		} else {
			locationRemoves = append(locationRemoves, locationID)
		}
	}

	for _, locationID := range locationRemoves {
		slog.Debug("removing empty spawn location group from composed zone",
			"group", locationID, "zone", zone.Label())
		delete(zone.SpawnLocationGroups, locationID)
	}
}
