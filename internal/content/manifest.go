// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the content format implemented by this engine. Packs
// declare a constraint against it in their manifest.
const FormatVersion = "1.0.0"

// PackManifest is the pack.yaml file at the root of a content pack.
type PackManifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
	Format  string `yaml:"format"`
}

// ParsePackManifest parses and validates a pack.yaml file, including the
// format constraint check against FormatVersion.
func ParsePackManifest(data []byte) (*PackManifest, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("manifest data is empty")
	}

	var m PackManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if m.Name == "" {
		return nil, fmt.Errorf("pack name is required")
	}
	if m.Format == "" {
		return nil, fmt.Errorf("format constraint is required")
	}

	constraint, err := semver.NewConstraint(m.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid format constraint %q: %w", m.Format, err)
	}

	supported := semver.MustParse(FormatVersion)
	if !constraint.Check(supported) {
		return nil, fmt.Errorf("pack requires content format %q, engine supports %s", m.Format, FormatVersion)
	}

	return &m, nil
}
