// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package main

import (
	"os"

	"github.com/samber/oops"

	"github.com/duskhollow/worldpack/internal/catalog"
	"github.com/duskhollow/worldpack/internal/loader"
	"github.com/duskhollow/worldpack/internal/store"
)

// openPack builds a loader over the configured pack directory and catalog.
func openPack(cfg *Config) (*loader.Loader, error) {
	if cfg.Catalog == "" {
		return nil, oops.In("config").
			Hint("pass --catalog or set catalog in the config file").
			New("no static catalog configured")
	}

	data, err := os.ReadFile(cfg.Catalog)
	if err != nil {
		return nil, oops.In("config").With("path", cfg.Catalog).Wrap(err)
	}

	cat, err := catalog.ParseStatic(data)
	if err != nil {
		return nil, err
	}

	return loader.New(store.NewFS(cfg.DataDir), cat), nil
}
