// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/oops"

	"github.com/duskhollow/worldpack/internal/catalog"
	"github.com/duskhollow/worldpack/internal/content"
	"github.com/duskhollow/worldpack/internal/registry"
	"github.com/duskhollow/worldpack/internal/script"
	"github.com/duskhollow/worldpack/internal/store"
)

func (l *Loader) loadAILogicGroups(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryAILogicGroup, func(path string, rec *content.AILogicGroup) error {
		if err := reg.AddAILogicGroup(rec); err != nil {
			return dupErr(content.CategoryAILogicGroup, path, err)
		}
		return nil
	})
}

func (l *Loader) loadDemonPresents(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryDemonPresent, func(path string, rec *content.DemonPresent) error {
		if err := reg.AddDemonPresent(rec); err != nil {
			return dupErr(content.CategoryDemonPresent, path, err)
		}
		return nil
	})
}

func (l *Loader) loadDemonQuestRewards(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryDemonQuestReward, func(path string, rec *content.DemonQuestReward) error {
		if err := reg.AddDemonQuestReward(rec); err != nil {
			return dupErr(content.CategoryDemonQuestReward, path, err)
		}
		return nil
	})
}

func (l *Loader) loadDropSets(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryDropSet, func(path string, rec *content.DropSet) error {
		if err := reg.AddDropSet(rec); err != nil {
			return dupErr(content.CategoryDropSet, path, err)
		}
		return nil
	})
}

// loadDerived forwards pass-through records to the external catalog, which
// owns their interpretation. A rejected record fails the load.
func (l *Loader) loadDerived(_ context.Context, _ *registry.Registry) error {
	return loadFiles(l, content.CategoryDerived, func(path string, rec *content.DerivedRecord) error {
		if !l.catalog.RegisterDerived(rec) {
			return oops.In("loader").Code("duplicate_id").
				With("category", content.CategoryDerived).With("path", path).
				With("kind", rec.Kind).With("id", rec.ID).
				New("catalog rejected derived definition")
		}
		return nil
	})
}

func (l *Loader) loadZones(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryZone, func(path string, rec *content.ZoneDefinition) error {
		return l.loadZone(reg, path, rec)
	})
}

func (l *Loader) loadZone(reg *registry.Registry, path string, zone *content.ZoneDefinition) error {
	label := zone.Label()

	basicType, known := l.catalog.ZoneBasicType(zone.ID)
	if !known {
		slog.Warn("skipping unknown zone", "zone", label, "path", path)
		return nil
	}

	if reg.ZoneExists(zone.ID, zone.DynamicMapID) {
		return oops.In("loader").Code("duplicate_id").With("path", path).
			Errorf("duplicate zone encountered: %s", label)
	}

	if err := l.checkSpawns(zone.Spawns, fmt.Sprintf("zone %s", label)); err != nil {
		return err
	}

	for sgID, sg := range zone.SpawnGroups {
		for spawnID := range sg.Spawns {
			if _, ok := zone.Spawns[spawnID]; !ok {
				return oops.In("loader").Code("dangling_reference").With("zone", label).
					Errorf("spawn group %d references unknown spawn %d", sgID, spawnID)
			}
		}

		if err := ValidateActions(sg.DefeatActions,
			fmt.Sprintf("Zone %s, SG %d Defeat", label, sgID), false, false); err != nil {
			return err
		}
		if err := ValidateActions(sg.SpawnActions,
			fmt.Sprintf("Zone %s, SG %d Spawn", label, sgID), false, false); err != nil {
			return err
		}
	}

	for slgID, slg := range zone.SpawnLocationGroups {
		for sgID := range slg.GroupIDs {
			if _, ok := zone.SpawnGroups[sgID]; !ok {
				return oops.In("loader").Code("dangling_reference").With("zone", label).
					Errorf("spawn location group %d references unknown spawn group %d", slgID, sgID)
			}
		}
	}

	if err := reg.AddZone(zone); err != nil {
		return oops.In("loader").Code("duplicate_id").With("path", path).Wrap(err)
	}

	if basicType == catalog.ZoneTypeField {
		reg.AddFieldZone(zone.ID, zone.DynamicMapID)
	}

	for _, npc := range zone.NPCs {
		if err := ValidateActions(npc.Actions,
			fmt.Sprintf("Zone %s, NPC %d", label, npc.ID), false, false); err != nil {
			return err
		}
	}
	for _, obj := range zone.Objects {
		if err := ValidateActions(obj.Actions,
			fmt.Sprintf("Zone %s, Object %d", label, obj.ID), false, false); err != nil {
			return err
		}
	}
	for plasmaID, plasma := range zone.PlasmaSpawns {
		if err := ValidateActions(plasma.SuccessActions,
			fmt.Sprintf("Zone %s, Plasma %d", label, plasmaID), false, false); err != nil {
			return err
		}
		if err := ValidateActions(plasma.FailActions,
			fmt.Sprintf("Zone %s, Plasma %d", label, plasmaID), false, false); err != nil {
			return err
		}
	}
	for spotID, spot := range zone.Spots {
		if err := ValidateActions(spot.Actions,
			fmt.Sprintf("Zone %s, Spot %d", label, spotID), false, false); err != nil {
			return err
		}
		if err := ValidateActions(spot.LeaveActions,
			fmt.Sprintf("Zone %s, Spot %d", label, spotID), false, false); err != nil {
			return err
		}
	}
	for _, trigger := range zone.Triggers {
		if err := ValidateActions(trigger.Actions,
			fmt.Sprintf("Zone %s trigger", label), trigger.AutoContext(), false); err != nil {
			return err
		}
	}

	return nil
}

func (l *Loader) loadPartials(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryZonePartial, func(path string, rec *content.ZonePartial) error {
		return l.loadPartial(reg, path, rec)
	})
}

func (l *Loader) loadPartial(reg *registry.Registry, path string, partial *content.ZonePartial) error {
	if partial.ID == content.GlobalPartialID {
		// The global partial only carries skill and drop set data.
		if partial.HasPositionData() {
			slog.Warn("global zone partial carries position data that will be ignored", "path", path)
		}
	} else {
		if err := l.checkSpawns(partial.Spawns, fmt.Sprintf("zone partial %d", partial.ID)); err != nil {
			return err
		}
	}

	if err := reg.AddPartial(partial); err != nil {
		return oops.In("loader").Code("duplicate_id").With("path", path).Wrap(err)
	}

	for sgID, sg := range partial.SpawnGroups {
		if err := ValidateActions(sg.DefeatActions,
			fmt.Sprintf("Partial %d, SG %d Defeat", partial.ID, sgID), false, false); err != nil {
			return err
		}
		if err := ValidateActions(sg.SpawnActions,
			fmt.Sprintf("Partial %d, SG %d Spawn", partial.ID, sgID), false, false); err != nil {
			return err
		}
	}
	for _, npc := range partial.NPCs {
		if err := ValidateActions(npc.Actions,
			fmt.Sprintf("Partial %d, NPC %d", partial.ID, npc.ID), false, false); err != nil {
			return err
		}
	}
	for _, obj := range partial.Objects {
		if err := ValidateActions(obj.Actions,
			fmt.Sprintf("Partial %d, Object %d", partial.ID, obj.ID), false, false); err != nil {
			return err
		}
	}
	for spotID, spot := range partial.Spots {
		if err := ValidateActions(spot.Actions,
			fmt.Sprintf("Partial %d, Spot %d", partial.ID, spotID), false, false); err != nil {
			return err
		}
		if err := ValidateActions(spot.LeaveActions,
			fmt.Sprintf("Partial %d, Spot %d", partial.ID, spotID), false, false); err != nil {
			return err
		}
	}
	for _, trigger := range partial.Triggers {
		if err := ValidateActions(trigger.Actions,
			fmt.Sprintf("Partial %d trigger", partial.ID), trigger.AutoContext(), false); err != nil {
			return err
		}
	}

	return nil
}

// checkSpawns validates every spawn's species against the catalog and the
// boss-group/category pairing.
func (l *Loader) checkSpawns(spawns map[uint32]*content.Spawn, source string) error {
	for spawnID, spawn := range spawns {
		if !l.catalog.SpeciesExists(spawn.SpeciesID) {
			return oops.In("loader").Code("dangling_reference").With("source", source).
				Errorf("spawn %d has unknown species %d", spawnID, spawn.SpeciesID)
		}
		if spawn.BossGroup != 0 && spawn.Category != content.SpawnBoss {
			return oops.In("loader").Code("dangling_reference").With("source", source).
				Errorf("spawn %d carries boss group %d but is not a boss spawn", spawnID, spawn.BossGroup)
		}
	}
	return nil
}

func (l *Loader) loadEvents(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryEvent, func(path string, rec *content.Event) error {
		if rec.ID == "" {
			return oops.In("loader").Code("malformed_record").With("path", path).
				New("event with no id encountered")
		}
		if err := reg.AddEvent(rec); err != nil {
			return dupErr(content.CategoryEvent, path, err)
		}

		if rec.Type == content.EventPerformActions {
			if err := ValidateActions(rec.Actions, rec.ID, false, true); err != nil {
				return err
			}
		}
		return nil
	})
}

func (l *Loader) loadInstances(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryZoneInstance, func(path string, rec *content.ZoneInstance) error {
		if _, known := l.catalog.ZoneBasicType(rec.LobbyID); !known {
			slog.Warn("skipping zone instance with unknown lobby",
				"instance", rec.ID, "lobby", rec.LobbyID, "path", path)
			return nil
		}

		if len(rec.ZoneIDs) != len(rec.DynamicMapIDs) {
			return oops.In("loader").Code("malformed_record").With("path", path).
				Errorf("zone instance %d has mismatched zone and dynamic map counts", rec.ID)
		}

		for i, zoneID := range rec.ZoneIDs {
			if !reg.ZoneExists(zoneID, rec.DynamicMapIDs[i]) {
				return oops.In("loader").Code("dangling_reference").With("path", path).
					Errorf("zone instance %d references unknown zone %d (%d)",
						rec.ID, zoneID, rec.DynamicMapIDs[i])
			}
		}

		if err := reg.AddInstance(rec); err != nil {
			return dupErr(content.CategoryZoneInstance, path, err)
		}
		return nil
	})
}

func (l *Loader) loadVariants(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryInstanceVariant, func(path string, rec *content.ZoneInstanceVariant) error {
		if reg.Variant(rec.ID) != nil {
			return oops.In("loader").Code("duplicate_id").With("path", path).
				Errorf("duplicate instance variant encountered: %d", rec.ID)
		}

		if err := checkVariantTimePoints(rec); err != nil {
			return oops.In("loader").Code("malformed_record").With("path", path).Wrap(err)
		}

		if pvp := rec.PvP; pvp != nil && pvp.DefaultInstanceID != 0 {
			if err := l.verifyPvPInstance(reg, pvp.DefaultInstanceID); err != nil {
				return err
			}
		}

		if err := reg.AddVariant(rec); err != nil {
			return dupErr(content.CategoryInstanceVariant, path, err)
		}
		return nil
	})
}

// checkVariantTimePoints asserts the phase time-point count each variant
// type requires.
func checkVariantTimePoints(variant *content.ZoneInstanceVariant) error {
	count := len(variant.TimePoints)
	switch variant.Type {
	case content.VariantTimeTrial:
		if count != 4 {
			return fmt.Errorf("time trial variant %d requires 4 time points, has %d", variant.ID, count)
		}
	case content.VariantPvP:
		if count != 2 && count != 3 {
			return fmt.Errorf("pvp variant %d requires 2 or 3 time points, has %d", variant.ID, count)
		}
	case content.VariantDemonOnly:
		if count != 3 && count != 4 {
			return fmt.Errorf("demon only variant %d requires 3 or 4 time points, has %d", variant.ID, count)
		}
	case content.VariantDiaspora:
		if count != 2 {
			return fmt.Errorf("diaspora variant %d requires 2 time points, has %d", variant.ID, count)
		}
	case content.VariantMission:
		if count != 1 {
			return fmt.Errorf("mission variant %d requires a time point, has %d", variant.ID, count)
		}
	case content.VariantPentalpha:
		if variant.SubID >= 5 {
			return fmt.Errorf("pentalpha variant %d has invalid sub id %d", variant.ID, variant.SubID)
		}
	}
	return nil
}

// verifyPvPInstance checks that every zone of a variant's default backing
// instance is tagged as a PvP zone by the catalog.
func (l *Loader) verifyPvPInstance(reg *registry.Registry, instanceID uint32) error {
	inst := reg.Instance(instanceID)
	if inst == nil {
		return oops.In("loader").Code("dangling_reference").
			Errorf("failed to verify pvp instance: %d", instanceID)
	}

	for _, zoneID := range inst.ZoneIDs {
		basicType, known := l.catalog.ZoneBasicType(zoneID)
		if !known || basicType != catalog.ZoneTypePvP {
			return oops.In("loader").Code("dangling_reference").With("zone", zoneID).
				Errorf("instance %d contains non-pvp zones and cannot be used for pvp", instanceID)
		}
	}
	return nil
}

func (l *Loader) loadShops(_ context.Context, reg *registry.Registry) error {
	return loadFiles(l, content.CategoryShop, func(path string, rec *content.ServerShop) error {
		if len(rec.Tabs) > content.MaxShopTabs {
			return oops.In("loader").Code("malformed_record").With("path", path).
				Errorf("shop %d has more than %d tabs", rec.ShopID, content.MaxShopTabs)
		}
		if err := reg.AddShop(rec); err != nil {
			return dupErr(content.CategoryShop, path, err)
		}
		return nil
	})
}

// loadScriptFiles registers every Lua source under the scripts sub-path.
func (l *Loader) loadScriptFiles(_ context.Context, _ *registry.Registry) error {
	loc := categoryPaths[content.CategoryScript]

	files, err := l.store.ListDirectory(loc.path, loc.recursive)
	if err != nil {
		return oops.In("loader").With("category", content.CategoryScript).Wrap(err)
	}

	files, err = store.Match(files, "*.lua")
	if err != nil {
		return err
	}

	for _, path := range files {
		// Reload passes only pick up files that appeared since the last
		// pass; registered scripts stay as they are.
		if _, done := l.scriptPaths[path]; done {
			continue
		}

		data, err := l.store.ReadFile(path)
		if err != nil {
			return oops.In("loader").With("path", path).Wrap(err)
		}
		if err := l.scripts.Register(path, string(data)); err != nil {
			return err
		}
		l.scriptPaths[path] = struct{}{}
		DefinitionsLoaded.WithLabelValues(string(content.CategoryScript)).Inc()
		slog.Debug("loaded script file", "path", path)
	}

	return nil
}

// LoadScripts reloads the scripts sub-path and returns the scripts that
// were not registered before the call.
func (l *Loader) LoadScripts(ctx context.Context) ([]*script.Script, error) {
	before := make(map[string]struct{})
	for _, name := range l.scripts.Names() {
		before[name] = struct{}{}
	}
	for _, name := range l.scripts.AINames() {
		before[name] = struct{}{}
	}

	if err := l.loadScriptFiles(ctx, nil); err != nil {
		return nil, err
	}

	var added []*script.Script
	for _, name := range l.scripts.Names() {
		if _, ok := before[name]; !ok {
			added = append(added, l.scripts.Script(name))
		}
	}
	for _, name := range l.scripts.AINames() {
		if _, ok := before[name]; !ok {
			added = append(added, l.scripts.AIScript(name))
		}
	}
	return added, nil
}

func dupErr(category content.Category, path string, err error) error {
	return oops.In("loader").Code("duplicate_id").
		With("category", category).With("path", path).Wrap(err)
}
