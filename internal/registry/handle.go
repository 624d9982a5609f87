// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package registry

import (
	"crypto/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropy     = ulid.Monotonic(rand.Reader, 0)
	entropyLock sync.Mutex
)

func newSnapshotID() ulid.ULID {
	entropyLock.Lock()
	defer entropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

// Snapshot is one immutable registry generation.
type Snapshot struct {
	ID       ulid.ULID
	Registry *Registry
}

// Handle publishes registry snapshots to concurrent readers. Reload swaps
// in a whole new registry atomically; readers holding the previous snapshot
// keep a consistent view until they re-fetch.
type Handle struct {
	current atomic.Pointer[Snapshot]
}

// NewHandle creates a handle publishing the given registry as its first
// snapshot.
func NewHandle(reg *Registry) *Handle {
	h := &Handle{}
	h.Swap(reg)
	return h
}

// Current returns the active snapshot.
func (h *Handle) Current() *Snapshot {
	return h.current.Load()
}

// Registry returns the active registry.
func (h *Handle) Registry() *Registry {
	return h.current.Load().Registry
}

// Swap atomically publishes a new registry generation and returns its
// snapshot id.
func (h *Handle) Swap(reg *Registry) ulid.ULID {
	snap := &Snapshot{ID: newSnapshotID(), Registry: reg}
	h.current.Store(snap)
	return snap.ID
}
