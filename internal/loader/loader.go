// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

// Package loader orchestrates loading a content pack from a store into a
// definition registry. Categories load in fixed dependency order (zones
// before instances, instances before variant verification) and the first
// fatal error aborts the whole load; a half-populated registry is unusable
// and never returned.
package loader

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/duskhollow/worldpack/internal/catalog"
	"github.com/duskhollow/worldpack/internal/content"
	"github.com/duskhollow/worldpack/internal/registry"
	"github.com/duskhollow/worldpack/internal/script"
	"github.com/duskhollow/worldpack/internal/store"
)

// manifestPath is the pack manifest location inside a content pack.
const manifestPath = "pack.yaml"

// categoryPaths maps each category to its sub-path within the pack and
// whether enumeration recurses. The paths are the content-pack schema and
// must stay stable across engine versions.
var categoryPaths = map[content.Category]struct {
	path      string
	recursive bool
}{
	content.CategoryAILogicGroup:     {"data/ailogicgroup", false},
	content.CategoryDemonPresent:     {"data/demonpresent", false},
	content.CategoryDemonQuestReward: {"data/demonquestreward", false},
	content.CategoryDropSet:          {"data/dropset", false},
	content.CategoryDerived:          {"data/derived", false},
	content.CategoryZone:             {"zones", false},
	content.CategoryZonePartial:      {"zones/partial", true},
	content.CategoryEvent:            {"events", true},
	content.CategoryZoneInstance:     {"data/zoneinstance", false},
	content.CategoryInstanceVariant:  {"data/zoneinstancevariant", false},
	content.CategoryShop:             {"shops", true},
	content.CategoryScript:           {"scripts", true},
}

// Loader loads content packs. A single Loader may load multiple packs
// sequentially; each LoadAll call produces an independent registry.
type Loader struct {
	store   store.Store
	catalog catalog.Catalog
	scripts *script.Registry

	scriptPaths map[string]struct{}
}

// New creates a loader over the given store and catalog.
func New(st store.Store, cat catalog.Catalog) *Loader {
	return &Loader{
		store:       st,
		catalog:     cat,
		scripts:     script.NewRegistry(),
		scriptPaths: make(map[string]struct{}),
	}
}

// Scripts returns the script registry populated by LoadAll.
func (l *Loader) Scripts() *script.Registry {
	return l.scripts
}

// LoadAll loads every category in dependency order and returns the
// populated registry. The registry must be treated as immutable by callers.
func (l *Loader) LoadAll(ctx context.Context) (*registry.Registry, error) {
	start := time.Now()

	manifest, err := l.loadManifest()
	if err != nil {
		return nil, err
	}

	reg := registry.New(manifest)

	steps := []struct {
		category content.Category
		run      func(context.Context, *registry.Registry) error
	}{
		{content.CategoryAILogicGroup, l.loadAILogicGroups},
		{content.CategoryDemonPresent, l.loadDemonPresents},
		{content.CategoryDemonQuestReward, l.loadDemonQuestRewards},
		{content.CategoryDropSet, l.loadDropSets},
		{content.CategoryDerived, l.loadDerived},
		{content.CategoryZone, l.loadZones},
		{content.CategoryZonePartial, l.loadPartials},
		{content.CategoryEvent, l.loadEvents},
		{content.CategoryZoneInstance, l.loadInstances},
		{content.CategoryInstanceVariant, l.loadVariants},
		{content.CategoryShop, l.loadShops},
		{content.CategoryScript, l.loadScriptFiles},
	}

	for _, step := range steps {
		slog.Debug("loading category", "category", step.category)
		if err := step.run(ctx, reg); err != nil {
			return nil, err
		}
	}

	LoadDuration.Observe(time.Since(start).Seconds())
	slog.Info("content pack loaded",
		"pack", manifest.Name,
		"duration", time.Since(start))
	return reg, nil
}

// loadManifest reads pack.yaml. A missing manifest is tolerated for bare
// packs; a malformed one or an unsupported format constraint is fatal.
func (l *Loader) loadManifest() (*content.PackManifest, error) {
	data, err := l.store.ReadFile(manifestPath)
	if err != nil {
		slog.Warn("content pack has no manifest, assuming current format",
			"format", content.FormatVersion)
		return &content.PackManifest{Name: "unnamed", Format: content.FormatVersion}, nil
	}

	manifest, err := content.ParsePackManifest(data)
	if err != nil {
		return nil, oops.In("loader").Code("malformed_record").With("path", manifestPath).Wrap(err)
	}
	return manifest, nil
}

// loadFiles enumerates a category's files and decodes each through the
// category schema, invoking handle once per record. Any failure is fatal.
func loadFiles[T any](l *Loader, category content.Category, handle func(path string, rec T) error) error {
	loc := categoryPaths[category]

	files, err := l.store.ListDirectory(loc.path, loc.recursive)
	if err != nil {
		return oops.In("loader").With("category", category).Wrap(err)
	}

	files, err = store.Match(files, "*.yaml")
	if err != nil {
		return err
	}

	for _, path := range files {
		data, err := l.store.ReadFile(path)
		if err != nil {
			return oops.In("loader").With("category", category).With("path", path).Wrap(err)
		}

		records, err := content.DecodeFile[T](category, data)
		if err != nil {
			return oops.In("loader").Code("malformed_record").
				With("category", category).With("path", path).Wrap(err)
		}

		for _, rec := range records {
			if err := handle(path, rec); err != nil {
				return err
			}
			DefinitionsLoaded.WithLabelValues(string(category)).Inc()
		}

		slog.Debug("loaded content file", "category", category, "path", path, "records", len(records))
	}

	return nil
}
