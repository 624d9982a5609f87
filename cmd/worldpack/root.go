// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package main

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/duskhollow/worldpack/internal/xdg"
)

// Global flags available to all subcommands.
var configFile string

// Config holds the resolved runtime configuration. Values come from the
// config file first, then command-line flags override.
type Config struct {
	DataDir   string `koanf:"data-dir"`
	Catalog   string `koanf:"catalog"`
	LogLevel  string `koanf:"log-level"`
	LogFormat string `koanf:"log-format"`
	Listen    string `koanf:"listen"`
}

// NewRootCmd creates the root command for the worldpack CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worldpack",
		Short: "Worldpack - game server static content registry",
		Long: `Worldpack loads, validates, and composes game world content packs:
zone definitions, zone partials, instances, events, shops, and
server-side scripts.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	// Add subcommands
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewComposeCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewServeCmd())

	return cmd
}

// addPackFlags registers the flags every pack-loading subcommand shares.
func addPackFlags(flags *pflag.FlagSet) {
	flags.String("data-dir", xdg.DataDir(), "content pack directory")
	flags.String("catalog", "", "static catalog file (zone types and species)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "json", "log format (json or text)")
}

// loadConfig resolves configuration from the config file and flags.
// Flags that were explicitly set override file values.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	path := configFile
	if path == "" {
		if _, err := os.Stat(xdg.ConfigFile()); err == nil {
			path = xdg.ConfigFile()
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.In("config").With("path", path).Wrap(err)
		}
	}

	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, oops.In("config").Wrap(err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.In("config").Wrap(err)
	}
	return &cfg, nil
}
