// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import (
	"encoding/json"
	"sort"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// IDSet is an unordered set of numeric ids. It appears in content files as a
// plain list; duplicates in the source are collapsed silently.
type IDSet map[uint32]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...uint32) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id uint32) bool {
	_, ok := s[id]
	return ok
}

// Insert adds id to the set.
func (s IDSet) Insert(id uint32) {
	s[id] = struct{}{}
}

// Remove deletes id from the set.
func (s IDSet) Remove(id uint32) {
	delete(s, id)
}

// Clone returns an independent copy of the set.
func (s IDSet) Clone() IDSet {
	if s == nil {
		return nil
	}
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []uint32 {
	out := make([]uint32, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// UnmarshalYAML decodes a YAML sequence of ids into the set.
func (s *IDSet) UnmarshalYAML(node *yaml.Node) error {
	var ids []uint32
	if err := node.Decode(&ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

// MarshalYAML encodes the set as a sorted sequence.
func (s IDSet) MarshalYAML() (any, error) {
	return s.Sorted(), nil
}

// UnmarshalJSON decodes a JSON array of ids into the set.
func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []uint32
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

// MarshalJSON encodes the set as a sorted array.
func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// JSONSchema describes the on-disk form (a list of ids) rather than the
// in-memory map.
func (IDSet) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Type: "integer"},
	}
}
