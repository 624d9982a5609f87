// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/duskhollow/worldpack/internal/compose"
	"github.com/duskhollow/worldpack/internal/content"
	"github.com/duskhollow/worldpack/internal/logging"
	"github.com/duskhollow/worldpack/internal/registry"
)

// NewComposeCmd creates the compose subcommand.
func NewComposeCmd() *cobra.Command {
	var (
		zoneID     uint32
		dynamicMap uint32
		partials   []uint
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Print a composed zone definition",
		Long: `Loads the content pack, composes the requested zone with its
auto-apply partials plus any extra partial ids, and prints the
resulting definition as YAML.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return runCompose(cmd, cfg, zoneID, dynamicMap, partials)
		},
	}

	addPackFlags(cmd.Flags())
	cmd.Flags().Uint32Var(&zoneID, "zone", 0, "zone id to compose")
	cmd.Flags().Uint32Var(&dynamicMap, "dynamic-map", 0, "dynamic map id (0 for first registered)")
	cmd.Flags().UintSliceVar(&partials, "partial", nil, "extra partial ids to apply")
	_ = cmd.MarkFlagRequired("zone")

	return cmd
}

func runCompose(cmd *cobra.Command, cfg *Config, zoneID, dynamicMap uint32, partials []uint) error {
	logging.SetDefault("worldpack", version, cfg.LogLevel, cfg.LogFormat)

	ldr, err := openPack(cfg)
	if err != nil {
		return err
	}
	reg, err := ldr.LoadAll(cmd.Context())
	if err != nil {
		return err
	}

	extras := content.NewIDSet()
	for _, id := range partials {
		extras.Insert(uint32(id))
	}

	zone, err := compose.New(reg).GetComposed(zoneID, dynamicMap, extras)
	if err != nil {
		return err
	}
	if zone == nil {
		return oops.In("compose").With("zone", registry.ZoneKey{ZoneID: zoneID, DynamicMapID: dynamicMap}).
			New("zone not found")
	}

	out, err := yaml.Marshal(zone)
	if err != nil {
		return oops.In("compose").Wrap(err)
	}
	cmd.Print(string(out))
	return nil
}
