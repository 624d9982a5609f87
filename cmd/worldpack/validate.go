// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/duskhollow/worldpack/internal/logging"
	"github.com/duskhollow/worldpack/pkg/errutil"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate a content pack without starting the server",
		Long: `Loads the full content pack: every definition is schema-checked,
cross-references are verified, action graphs are walked, and scripts
are compiled. Exits with code 0 on success, non-zero on failure.

Useful in CI pipelines to catch content errors early:
  worldpack validate --data-dir ./pack --catalog ./catalog.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return runValidate(cmd, cfg)
		},
	}
	addPackFlags(cmd.Flags())
	return cmd
}

func runValidate(cmd *cobra.Command, cfg *Config) error {
	logging.SetDefault("worldpack", version, cfg.LogLevel, cfg.LogFormat)

	ldr, err := openPack(cfg)
	if err != nil {
		errutil.LogError(slog.Default(), "pack validation failed", err)
		return err
	}

	reg, err := ldr.LoadAll(cmd.Context())
	if err != nil {
		errutil.LogError(slog.Default(), "pack validation failed", err)
		return err
	}

	slog.Info("content pack valid",
		"zones", len(reg.AllZoneIDs()),
		"instances", len(reg.InstanceIDs()),
		"scripts", len(ldr.Scripts().Names()))
	return nil
}
