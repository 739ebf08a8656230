// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cargo analyzes cargo packages and workspaces.
//
// A run loads the manifest, discovers the Rust sources of every crate,
// parses and walks them in parallel and merges the findings in file order.
// Public API membership follows the module tree: files are reached from the
// library root through out-of-line module declarations.
package cargo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name of cargo manifests.
const ManifestName = "Cargo.toml"

var (
	// ErrNoManifest is returned when no manifest can be found.
	ErrNoManifest = errors.New("could not find " + ManifestName)

	// ErrUnknownProfile is returned for build profiles that are neither built in nor defined.
	ErrUnknownProfile = errors.New("unknown profile")
)

// Manifest is the part of a Cargo.toml relevant for analysis.
type Manifest struct {
	Package   *Package           `toml:"package"`
	Lib       *Target            `toml:"lib"`
	Bins      []Target           `toml:"bin"`
	Workspace *Workspace         `toml:"workspace"`
	Profiles  map[string]Profile `toml:"profile"`
}

// Package is the [package] table.
type Package struct {
	Name string `toml:"name"`
}

// Target is a [lib] or [[bin]] table.
type Target struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Workspace is the [workspace] table.
type Workspace struct {
	Members []string `toml:"members"`
	Exclude []string `toml:"exclude"`
}

// Profile is a [profile.NAME] table.
type Profile struct {
	Inherits       string `toml:"inherits"`
	OverflowChecks *bool  `toml:"overflow-checks"`
}

// FindManifest looks for a manifest in dir and its parents.
func FindManifest(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoManifest
		}

		dir = parent
	}
}

// LoadManifest reads and decodes a manifest.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNoManifest, path)
		}

		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &m, nil
}

// builtinProfiles are the built-in profiles with their overflow check defaults.
var builtinProfiles = map[string]struct {
	inherits       string
	overflowChecks bool
}{
	"dev":     {overflowChecks: true},
	"release": {overflowChecks: false},
	"test":    {inherits: "dev"},
	"bench":   {inherits: "release"},
}

// OverflowChecks reports whether integer overflow traps in the named profile.
// Custom profiles inherit from their parent, built-in defaults apply otherwise.
func (m *Manifest) OverflowChecks(profile string) (bool, error) {
	var seen []string

	for name := profile; ; {
		if slices.Contains(seen, name) {
			return false, fmt.Errorf("profile %q: cyclic inheritance %v", profile, append(seen, name))
		}

		seen = append(seen, name)

		builtin, isBuiltin := builtinProfiles[name]
		p, defined := m.Profiles[name]

		switch {
		case defined && p.OverflowChecks != nil:
			return *p.OverflowChecks, nil

		case defined && p.Inherits != "":
			name = p.Inherits

		case isBuiltin && builtin.inherits != "":
			name = builtin.inherits

		case isBuiltin:
			return builtin.overflowChecks, nil

		default:
			return false, fmt.Errorf("%w %q", ErrUnknownProfile, name)
		}
	}
}
