// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/oops"
)

// FS is a Store over a directory on the local filesystem.
type FS struct {
	root string
}

// NewFS creates a filesystem store rooted at dir.
func NewFS(dir string) *FS {
	return &FS{root: dir}
}

// ListDirectory implements Store. Results are sorted so load order does not
// depend on directory iteration order.
func (s *FS) ListDirectory(path string, recursive bool) ([]string, error) {
	dir := filepath.Join(s.root, filepath.FromSlash(path))

	var files []string
	if recursive {
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, s.relPath(p))
			}
			return nil
		})
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, oops.In("store").With("path", path).Hint("failed to walk directory").Wrap(err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, oops.In("store").With("path", path).Hint("failed to read directory").Wrap(err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				files = append(files, s.relPath(filepath.Join(dir, entry.Name())))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadFile implements Store.
func (s *FS) ReadFile(path string) ([]byte, error) {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	data, err := os.ReadFile(filepath.Clean(full))
	if err != nil {
		return nil, oops.In("store").With("path", path).Wrap(err)
	}
	return data, nil
}

func (s *FS) relPath(full string) string {
	rel, err := filepath.Rel(s.root, full)
	if err != nil {
		rel = full
	}
	return filepath.ToSlash(rel)
}
