// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

// Package catalog defines the contract to the external schema/species
// catalog the loader validates against. The engine never interprets catalog
// data itself; it only asks whether ids exist and what basic type a zone
// carries, and forwards derived definitions for the catalog to own.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/duskhollow/worldpack/internal/content"
)

// ZoneBasicType is the category the catalog assigns to a zone id.
type ZoneBasicType uint8

// Zone basic types the loader cares about. Other values pass through
// untouched.
const (
	ZoneTypeField ZoneBasicType = 2
	ZoneTypePvP   ZoneBasicType = 7
)

// Catalog is the external schema/species catalog.
type Catalog interface {
	// ZoneBasicType resolves a zone id to its basic type. The second
	// return is false for zone ids the catalog does not know.
	ZoneBasicType(zoneID uint32) (ZoneBasicType, bool)

	// SpeciesExists reports whether a spawn species id is known.
	SpeciesExists(speciesID uint32) bool

	// RegisterDerived hands a pass-through record to the catalog. A false
	// return rejects the record and fails the load.
	RegisterDerived(rec *content.DerivedRecord) bool
}

// Static is a Catalog backed by a YAML index file. It serves the CLI and
// tests; a live channel server supplies its own implementation.
type Static struct {
	zones   map[uint32]ZoneBasicType
	species map[uint32]struct{}
	derived map[string]map[uint32]*content.DerivedRecord
}

type staticDoc struct {
	Zones   map[uint32]uint8 `yaml:"zones"`
	Species []uint32         `yaml:"species"`
}

// ParseStatic builds a Static catalog from a YAML index document with
// top-level "zones" (id to basic type) and "species" (id list) entries.
func ParseStatic(data []byte) (*Static, error) {
	var doc staticDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid catalog YAML: %w", err)
	}

	c := NewStatic()
	for id, basicType := range doc.Zones {
		c.AddZone(id, ZoneBasicType(basicType))
	}
	for _, id := range doc.Species {
		c.AddSpecies(id)
	}
	return c, nil
}

// NewStatic creates an empty static catalog.
func NewStatic() *Static {
	return &Static{
		zones:   make(map[uint32]ZoneBasicType),
		species: make(map[uint32]struct{}),
		derived: make(map[string]map[uint32]*content.DerivedRecord),
	}
}

// AddZone registers a zone id with its basic type.
func (c *Static) AddZone(zoneID uint32, basicType ZoneBasicType) {
	c.zones[zoneID] = basicType
}

// AddSpecies registers a species id.
func (c *Static) AddSpecies(speciesID uint32) {
	c.species[speciesID] = struct{}{}
}

// ZoneBasicType implements Catalog.
func (c *Static) ZoneBasicType(zoneID uint32) (ZoneBasicType, bool) {
	basicType, ok := c.zones[zoneID]
	return basicType, ok
}

// SpeciesExists implements Catalog.
func (c *Static) SpeciesExists(speciesID uint32) bool {
	_, ok := c.species[speciesID]
	return ok
}

// RegisterDerived implements Catalog. Duplicate (kind, id) pairs are
// rejected.
func (c *Static) RegisterDerived(rec *content.DerivedRecord) bool {
	if rec == nil || rec.Kind == "" {
		return false
	}
	table, ok := c.derived[rec.Kind]
	if !ok {
		table = make(map[uint32]*content.DerivedRecord)
		c.derived[rec.Kind] = table
	}
	if _, exists := table[rec.ID]; exists {
		return false
	}
	table[rec.ID] = rec
	return true
}

// Derived returns a registered pass-through record, for tests and tooling.
func (c *Static) Derived(kind string, id uint32) (*content.DerivedRecord, bool) {
	rec, ok := c.derived[kind][id]
	return rec, ok
}
