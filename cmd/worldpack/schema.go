// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/duskhollow/worldpack/internal/content"
	"github.com/duskhollow/worldpack/internal/xdg"
)

// NewSchemaCmd creates the schema subcommand.
func NewSchemaCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate JSON Schema files for all content categories",
		Long: `Writes one JSON Schema file per content category. Editors and CI
can use these to validate pack files before loading them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchema(cmd, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "schemas", "output directory")
	return cmd
}

func runSchema(cmd *cobra.Command, outDir string) error {
	if err := xdg.EnsureDir(outDir); err != nil {
		return oops.In("schema").With("dir", outDir).Wrap(err)
	}

	for _, category := range content.Categories() {
		schema, err := content.GenerateSchema(category)
		if err != nil {
			return err
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("%s.schema.json", category))
		if err := os.WriteFile(outPath, schema, 0o600); err != nil {
			return oops.In("schema").With("path", outPath).Wrap(err)
		}
		cmd.Printf("Generated %s\n", outPath)
	}
	return nil
}
