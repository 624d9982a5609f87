// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

// Package content defines the static server content data model: zone
// definitions and their partial patches, zone instances and gameplay-mode
// variants, events, shops, drop sets and the action/trigger records embedded
// in them. Records decode from YAML content files and, once loaded, are
// treated as immutable. Clone methods produce independently owned deep
// copies for the composition layer.
package content
