// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

// AILogicGroup tunes enemy AI behavior for the spawns referencing it.
type AILogicGroup struct {
	ID           uint16  `yaml:"id" json:"id"`
	AggroLevel   uint8   `yaml:"aggro_level,omitempty" json:"aggro_level,omitempty"`
	AggroRange   float32 `yaml:"aggro_range,omitempty" json:"aggro_range,omitempty"`
	DeaggroScale float32 `yaml:"deaggro_scale,omitempty" json:"deaggro_scale,omitempty"`
	Script       string  `yaml:"script,omitempty" json:"script,omitempty"`
}

// DemonPresent lists the item pools granted by a present demon.
type DemonPresent struct {
	ID            uint32   `yaml:"id" json:"id"`
	CommonItems   []uint32 `yaml:"common_items,omitempty" json:"common_items,omitempty"`
	UncommonItems []uint32 `yaml:"uncommon_items,omitempty" json:"uncommon_items,omitempty"`
	RareItems     []uint32 `yaml:"rare_items,omitempty" json:"rare_items,omitempty"`
}

// DemonQuestReward describes reward tiers for demon quests.
type DemonQuestReward struct {
	ID         uint32  `yaml:"id" json:"id"`
	QuestType  uint8   `yaml:"quest_type,omitempty" json:"quest_type,omitempty"`
	Sequential bool    `yaml:"sequential,omitempty" json:"sequential,omitempty"`
	ItemSets   []IDSet `yaml:"item_sets,omitempty" json:"item_sets,omitempty"`
}

// Drop is one weighted item drop entry.
type Drop struct {
	ItemID   uint32  `yaml:"item_id" json:"item_id"`
	MinStack uint16  `yaml:"min_stack,omitempty" json:"min_stack,omitempty"`
	MaxStack uint16  `yaml:"max_stack,omitempty" json:"max_stack,omitempty"`
	Rate     float32 `yaml:"rate" json:"rate"`
}

// DropSet groups drops under a reusable id referenced from zones and
// spawns. A non-zero GiftBoxID additionally aliases the set for gift-box
// lookups; the alias must be unique registry-wide.
type DropSet struct {
	ID        uint32  `yaml:"id" json:"id"`
	GiftBoxID uint32  `yaml:"gift_box_id,omitempty" json:"gift_box_id,omitempty"`
	Mutex     bool    `yaml:"mutex,omitempty" json:"mutex,omitempty"`
	Drops     []*Drop `yaml:"drops,omitempty" json:"drops,omitempty"`
}

// DerivedRecord is a pass-through catalog extension: the loader parses it
// only far enough to hand it to the external catalog, which owns its
// interpretation. Kind routes it to the right catalog table.
type DerivedRecord struct {
	Kind string         `yaml:"kind" json:"kind"`
	ID   uint32         `yaml:"id" json:"id"`
	Data map[string]any `yaml:"data,omitempty" json:"data,omitempty"`
}
