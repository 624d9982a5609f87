// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

// Package registry holds the canonical content definitions produced by one
// load pass. A Registry is populated exactly once by the loader and is
// immutable afterward, which makes unsynchronized concurrent reads safe.
// Hot reload replaces the whole registry through a Handle swap; nothing is
// ever mutated in place.
package registry

import (
	"errors"
	"fmt"

	"github.com/duskhollow/worldpack/internal/content"
)

// ErrDuplicateID indicates a definition id was registered twice within its
// category.
var ErrDuplicateID = errors.New("duplicate id")

// ZoneKey identifies a zone definition registry-wide.
type ZoneKey struct {
	ZoneID       uint32
	DynamicMapID uint32
}

// Registry is the definition registry for one loaded content pack.
type Registry struct {
	pack *content.PackManifest

	zones     map[uint32]map[uint32]*content.ZoneDefinition
	zoneOrder map[uint32][]uint32

	fieldZones []ZoneKey

	partials  map[uint32]*content.ZonePartial
	autoApply map[uint32]content.IDSet

	instances map[uint32]*content.ZoneInstance
	variants  map[uint32]*content.ZoneInstanceVariant

	standardPvP map[content.MatchType]content.IDSet

	events map[string]*content.Event

	shops       map[uint32]*content.ServerShop
	compShopIDs []uint32

	aiLogicGroups     map[uint16]*content.AILogicGroup
	demonPresents     map[uint32]*content.DemonPresent
	demonQuestRewards map[uint32]*content.DemonQuestReward

	dropSets     map[uint32]*content.DropSet
	giftDropSets map[uint32]uint32
}

// New creates an empty registry for the given pack manifest.
func New(pack *content.PackManifest) *Registry {
	return &Registry{
		pack:              pack,
		zones:             make(map[uint32]map[uint32]*content.ZoneDefinition),
		zoneOrder:         make(map[uint32][]uint32),
		partials:          make(map[uint32]*content.ZonePartial),
		autoApply:         make(map[uint32]content.IDSet),
		instances:         make(map[uint32]*content.ZoneInstance),
		variants:          make(map[uint32]*content.ZoneInstanceVariant),
		standardPvP:       make(map[content.MatchType]content.IDSet),
		events:            make(map[string]*content.Event),
		shops:             make(map[uint32]*content.ServerShop),
		aiLogicGroups:     make(map[uint16]*content.AILogicGroup),
		demonPresents:     make(map[uint32]*content.DemonPresent),
		demonQuestRewards: make(map[uint32]*content.DemonQuestReward),
		dropSets:          make(map[uint32]*content.DropSet),
		giftDropSets:      make(map[uint32]uint32),
	}
}

// Pack returns the manifest of the loaded content pack.
func (r *Registry) Pack() *content.PackManifest {
	return r.pack
}

// AddZone registers a zone definition under its (id, dynamicMapID) pair.
func (r *Registry) AddZone(zone *content.ZoneDefinition) error {
	byMap, ok := r.zones[zone.ID]
	if !ok {
		byMap = make(map[uint32]*content.ZoneDefinition)
		r.zones[zone.ID] = byMap
	}
	if _, exists := byMap[zone.DynamicMapID]; exists {
		return fmt.Errorf("%w: zone %s", ErrDuplicateID, zone.Label())
	}
	byMap[zone.DynamicMapID] = zone
	r.zoneOrder[zone.ID] = append(r.zoneOrder[zone.ID], zone.DynamicMapID)
	return nil
}

// Zone resolves a zone definition. A zero dynamicMapID returns the first
// registered dynamic map of the zone id.
func (r *Registry) Zone(zoneID, dynamicMapID uint32) *content.ZoneDefinition {
	byMap, ok := r.zones[zoneID]
	if !ok {
		return nil
	}
	if dynamicMapID == 0 {
		order := r.zoneOrder[zoneID]
		if len(order) == 0 {
			return nil
		}
		return byMap[order[0]]
	}
	return byMap[dynamicMapID]
}

// ZoneExists reports whether the exact (zoneID, dynamicMapID) pair is
// registered.
func (r *Registry) ZoneExists(zoneID, dynamicMapID uint32) bool {
	_, ok := r.zones[zoneID][dynamicMapID]
	return ok
}

// AllZoneIDs returns every registered zone id with its dynamic map ids.
func (r *Registry) AllZoneIDs() map[uint32][]uint32 {
	out := make(map[uint32][]uint32, len(r.zoneOrder))
	for id, order := range r.zoneOrder {
		out[id] = append([]uint32(nil), order...)
	}
	return out
}

// AddFieldZone records a zone the catalog categorizes as a field zone.
func (r *Registry) AddFieldZone(zoneID, dynamicMapID uint32) {
	r.fieldZones = append(r.fieldZones, ZoneKey{ZoneID: zoneID, DynamicMapID: dynamicMapID})
}

// FieldZones returns the field zone keys in registration order.
func (r *Registry) FieldZones() []ZoneKey {
	return append([]ZoneKey(nil), r.fieldZones...)
}

// AddPartial registers a zone partial and, for auto-apply partials, indexes
// it under each declared dynamic map id.
func (r *Registry) AddPartial(partial *content.ZonePartial) error {
	if _, exists := r.partials[partial.ID]; exists {
		return fmt.Errorf("%w: zone partial %d", ErrDuplicateID, partial.ID)
	}
	r.partials[partial.ID] = partial

	if partial.ID != content.GlobalPartialID && partial.AutoApply {
		for dynamicMapID := range partial.DynamicMapIDs {
			set, ok := r.autoApply[dynamicMapID]
			if !ok {
				set = content.NewIDSet()
				r.autoApply[dynamicMapID] = set
			}
			set.Insert(partial.ID)
		}
	}
	return nil
}

// Partial returns a zone partial by id.
func (r *Registry) Partial(id uint32) *content.ZonePartial {
	return r.partials[id]
}

// AutoApplyPartials returns the ids of auto-apply partials indexed for a
// dynamic map id.
func (r *Registry) AutoApplyPartials(dynamicMapID uint32) content.IDSet {
	return r.autoApply[dynamicMapID].Clone()
}

// AddInstance registers a zone instance.
func (r *Registry) AddInstance(inst *content.ZoneInstance) error {
	if _, exists := r.instances[inst.ID]; exists {
		return fmt.Errorf("%w: zone instance %d", ErrDuplicateID, inst.ID)
	}
	r.instances[inst.ID] = inst
	return nil
}

// Instance returns a zone instance by id.
func (r *Registry) Instance(id uint32) *content.ZoneInstance {
	return r.instances[id]
}

// InstanceIDs returns every registered instance id.
func (r *Registry) InstanceIDs() []uint32 {
	out := make([]uint32, 0, len(r.instances))
	for id := range r.instances {
		out = append(out, id)
	}
	return out
}

// ExistsInInstance reports whether an instance includes the given zone. A
// zero dynamicMapID matches any dynamic map of the zone id.
func (r *Registry) ExistsInInstance(instanceID, zoneID, dynamicMapID uint32) bool {
	inst := r.instances[instanceID]
	return inst != nil && inst.Contains(zoneID, dynamicMapID)
}

// AddVariant registers an instance variant and indexes standard PvP
// variants by match type.
func (r *Registry) AddVariant(variant *content.ZoneInstanceVariant) error {
	if _, exists := r.variants[variant.ID]; exists {
		return fmt.Errorf("%w: instance variant %d", ErrDuplicateID, variant.ID)
	}
	r.variants[variant.ID] = variant

	if pvp := variant.PvP; pvp != nil && !pvp.SpecialMode && pvp.MatchType != content.MatchCustom {
		set, ok := r.standardPvP[pvp.MatchType]
		if !ok {
			set = content.NewIDSet()
			r.standardPvP[pvp.MatchType] = set
		}
		set.Insert(variant.ID)
	}
	return nil
}

// Variant returns an instance variant by id.
func (r *Registry) Variant(id uint32) *content.ZoneInstanceVariant {
	return r.variants[id]
}

// StandardPvPVariantIDs returns the non-custom, non-special PvP variant ids
// for a match type.
func (r *Registry) StandardPvPVariantIDs(matchType content.MatchType) content.IDSet {
	return r.standardPvP[matchType].Clone()
}

// AddEvent registers an event by its string id.
func (r *Registry) AddEvent(event *content.Event) error {
	if _, exists := r.events[event.ID]; exists {
		return fmt.Errorf("%w: event %q", ErrDuplicateID, event.ID)
	}
	r.events[event.ID] = event
	return nil
}

// Event returns an event by id.
func (r *Registry) Event(id string) *content.Event {
	return r.events[id]
}

// AddShop registers a server shop and indexes comp shop ids.
func (r *Registry) AddShop(shop *content.ServerShop) error {
	if _, exists := r.shops[shop.ShopID]; exists {
		return fmt.Errorf("%w: shop %d", ErrDuplicateID, shop.ShopID)
	}
	r.shops[shop.ShopID] = shop

	if shop.Type == content.ShopComp {
		r.compShopIDs = append(r.compShopIDs, shop.ShopID)
	}
	return nil
}

// Shop returns a server shop by id.
func (r *Registry) Shop(id uint32) *content.ServerShop {
	return r.shops[id]
}

// CompShopIDs returns the comp shop ids in registration order.
func (r *Registry) CompShopIDs() []uint32 {
	return append([]uint32(nil), r.compShopIDs...)
}

// AddAILogicGroup registers an AI logic group.
func (r *Registry) AddAILogicGroup(group *content.AILogicGroup) error {
	if _, exists := r.aiLogicGroups[group.ID]; exists {
		return fmt.Errorf("%w: AI logic group %d", ErrDuplicateID, group.ID)
	}
	r.aiLogicGroups[group.ID] = group
	return nil
}

// AILogicGroup returns an AI logic group by id.
func (r *Registry) AILogicGroup(id uint16) *content.AILogicGroup {
	return r.aiLogicGroups[id]
}

// AddDemonPresent registers a demon present entry.
func (r *Registry) AddDemonPresent(present *content.DemonPresent) error {
	if _, exists := r.demonPresents[present.ID]; exists {
		return fmt.Errorf("%w: demon present %d", ErrDuplicateID, present.ID)
	}
	r.demonPresents[present.ID] = present
	return nil
}

// DemonPresent returns a demon present entry by id.
func (r *Registry) DemonPresent(id uint32) *content.DemonPresent {
	return r.demonPresents[id]
}

// AddDemonQuestReward registers a demon quest reward entry.
func (r *Registry) AddDemonQuestReward(reward *content.DemonQuestReward) error {
	if _, exists := r.demonQuestRewards[reward.ID]; exists {
		return fmt.Errorf("%w: demon quest reward %d", ErrDuplicateID, reward.ID)
	}
	r.demonQuestRewards[reward.ID] = reward
	return nil
}

// DemonQuestRewards returns all demon quest reward entries keyed by id.
func (r *Registry) DemonQuestRewards() map[uint32]*content.DemonQuestReward {
	out := make(map[uint32]*content.DemonQuestReward, len(r.demonQuestRewards))
	for id, reward := range r.demonQuestRewards {
		out[id] = reward
	}
	return out
}

// AddDropSet registers a drop set and its optional gift-box alias.
func (r *Registry) AddDropSet(set *content.DropSet) error {
	if _, exists := r.dropSets[set.ID]; exists {
		return fmt.Errorf("%w: drop set %d", ErrDuplicateID, set.ID)
	}
	if set.GiftBoxID != 0 {
		if _, exists := r.giftDropSets[set.GiftBoxID]; exists {
			return fmt.Errorf("%w: drop set gift box %d", ErrDuplicateID, set.GiftBoxID)
		}
		r.giftDropSets[set.GiftBoxID] = set.ID
	}
	r.dropSets[set.ID] = set
	return nil
}

// DropSet returns a drop set by id.
func (r *Registry) DropSet(id uint32) *content.DropSet {
	return r.dropSets[id]
}

// GiftDropSet resolves a gift-box id to its drop set.
func (r *Registry) GiftDropSet(giftBoxID uint32) *content.DropSet {
	id, ok := r.giftDropSets[giftBoxID]
	if !ok {
		return nil
	}
	return r.dropSets[id]
}
