// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

// Package store abstracts the backing content store the loader reads from.
// Paths are slash-separated and relative to the store root, matching the
// content-pack directory schema.
package store

import (
	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// Store provides read access to a content pack.
type Store interface {
	// ListDirectory returns the file paths under path, optionally
	// recursing into subdirectories. A missing directory is not an error;
	// it lists as empty.
	ListDirectory(path string, recursive bool) ([]string, error)

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
}

// Match filters paths by a glob pattern applied to the path's base name.
// The pattern is compiled once per call; an invalid pattern is an error.
func Match(paths []string, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, oops.In("store").With("pattern", pattern).Wrap(err)
	}

	var out []string
	for _, p := range paths {
		if g.Match(baseName(p)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
