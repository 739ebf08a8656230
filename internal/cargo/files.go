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

package cargo

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// skippedDirs are top-level directories not searched for sources.
var skippedDirs = []string{"target", "tests", "examples", "benches"}

// Discovery finds the Rust sources of a crate.
type Discovery struct {
	// Excludes are glob patterns of slash-separated paths relative to the crate directory.
	// A pattern matching a directory excludes everything below.
	Excludes []string

	// CargoHome is skipped when it is inside the crate.
	CargoHome string
}

// NewDiscovery creates a [Discovery] with the cargo home from the environment.
func NewDiscovery(excludes []string) Discovery {
	home := os.Getenv("CARGO_HOME")
	if home == "" {
		if user, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(user, ".cargo")
		}
	}

	return Discovery{Excludes: excludes, CargoHome: home}
}

// Files returns the slash-separated paths of all .rs files below dir, sorted.
// Nested packages are left to their own discovery.
func (d Discovery) Files(dir string) ([]string, error) {
	cargoHome := ""
	if d.CargoHome != "" {
		cargoHome, _ = filepath.Abs(d.CargoHome)
	}

	var files []string

	err := filepath.WalkDir(dir, func(p string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		rel = filepath.ToSlash(rel)

		if e.IsDir() {
			if d.skipDir(p, rel, cargoHome) {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasSuffix(rel, ".rs") && !hidden(e.Name()) && !d.excluded(rel) {
			files = append(files, rel)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)

	return files, nil
}

func (d Discovery) skipDir(p, rel, cargoHome string) bool {
	name := path.Base(rel)
	topLevel := name == rel

	switch {
	case hidden(name), topLevel && slices.Contains(skippedDirs, name), d.excluded(rel):
		return true

	case cargoHome != "":
		if abs, err := filepath.Abs(p); err == nil && abs == cargoHome {
			return true
		}
	}

	_, err := os.Stat(filepath.Join(p, ManifestName))

	return err == nil // nested package
}

func (d Discovery) excluded(rel string) bool {
	return slices.ContainsFunc(d.Excludes, func(pattern string) bool {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}

		ok, _ := path.Match(pattern, path.Base(rel))

		return ok
	})
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
