// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskhollow/worldpack/internal/content"
)

func TestParseStatic(t *testing.T) {
	cat, err := ParseStatic([]byte(`
zones:
  1000: 2
  1001: 7
species:
  - 401
  - 402
`))
	require.NoError(t, err)

	basicType, ok := cat.ZoneBasicType(1000)
	require.True(t, ok)
	assert.Equal(t, ZoneTypeField, basicType)

	basicType, ok = cat.ZoneBasicType(1001)
	require.True(t, ok)
	assert.Equal(t, ZoneTypePvP, basicType)

	_, ok = cat.ZoneBasicType(9999)
	assert.False(t, ok)

	assert.True(t, cat.SpeciesExists(401))
	assert.False(t, cat.SpeciesExists(999))
}

func TestParseStatic_BadYAML(t *testing.T) {
	_, err := ParseStatic([]byte("{"))
	assert.Error(t, err)
}

func TestStatic_RegisterDerived(t *testing.T) {
	cat := NewStatic()

	rec := &content.DerivedRecord{Kind: "enchant", ID: 5}
	assert.True(t, cat.RegisterDerived(rec))

	got, ok := cat.Derived("enchant", 5)
	require.True(t, ok)
	assert.Same(t, rec, got)

	assert.False(t, cat.RegisterDerived(&content.DerivedRecord{Kind: "enchant", ID: 5}),
		"duplicate (kind, id) rejected")
	assert.True(t, cat.RegisterDerived(&content.DerivedRecord{Kind: "title", ID: 5}),
		"same id under another kind allowed")

	assert.False(t, cat.RegisterDerived(nil))
	assert.False(t, cat.RegisterDerived(&content.DerivedRecord{ID: 1}), "kind required")
}
