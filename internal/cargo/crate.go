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
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Crate is a package with its root source files.
type Crate struct {
	// Name is the package name.
	Name string

	// Dir is the package directory.
	Dir string

	// Lib is the library root relative to Dir, empty for binary-only packages.
	Lib string

	// Bins are the binary roots relative to Dir.
	Bins []string
}

// Crates returns the packages of a manifest: the root package, if any, and
// the workspace members.
func Crates(manifestPath string, m *Manifest) ([]Crate, error) {
	dir := filepath.Dir(manifestPath)

	var crates []Crate
	if m.Package != nil {
		crates = append(crates, m.crate(dir))
	}

	if m.Workspace == nil {
		return crates, nil
	}

	members, err := m.Workspace.members(dir)
	if err != nil {
		return nil, err
	}

	for _, member := range members {
		if member == dir {
			continue
		}

		mm, err := LoadManifest(filepath.Join(member, ManifestName))
		if err != nil {
			return nil, err
		}

		if mm.Package == nil {
			continue
		}

		crates = append(crates, mm.crate(member))
	}

	return crates, nil
}

// members expands the member globs of a workspace rooted at dir.
func (w *Workspace) members(dir string) ([]string, error) {
	var members []string

	for _, pattern := range w.Members {
		matches, err := filepath.Glob(filepath.Join(dir, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, fmt.Errorf("invalid workspace member %q: %w", pattern, err)
		}

		for _, match := range matches {
			if w.excluded(dir, match) {
				continue
			}

			if _, err := os.Stat(filepath.Join(match, ManifestName)); err != nil {
				continue
			}

			members = append(members, match)
		}
	}

	slices.Sort(members)

	return slices.Compact(members), nil
}

func (w *Workspace) excluded(dir, member string) bool {
	rel, err := filepath.Rel(dir, member)
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)

	return slices.ContainsFunc(w.Exclude, func(ex string) bool {
		return path.Clean(ex) == rel
	})
}

// crate returns the package in dir with its explicit or conventional targets.
func (m *Manifest) crate(dir string) Crate {
	c := Crate{Name: m.Package.Name, Dir: dir}

	switch {
	case m.Lib != nil && m.Lib.Path != "":
		c.Lib = cleanPath(m.Lib.Path)

	case exists(dir, "src/lib.rs"):
		c.Lib = "src/lib.rs"
	}

	for _, bin := range m.Bins {
		if bin.Path != "" {
			c.Bins = append(c.Bins, cleanPath(bin.Path))
		}
	}

	if exists(dir, "src/main.rs") {
		c.Bins = append(c.Bins, "src/main.rs")
	}

	// Binaries in src/bin are discovered automatically
	entries, _ := os.ReadDir(filepath.Join(dir, "src", "bin"))
	for _, e := range entries {
		switch name := e.Name(); {
		case !e.IsDir() && strings.HasSuffix(name, ".rs"):
			c.Bins = append(c.Bins, "src/bin/"+name)

		case e.IsDir() && exists(dir, "src/bin/"+name+"/main.rs"):
			c.Bins = append(c.Bins, "src/bin/"+name+"/main.rs")
		}
	}

	slices.Sort(c.Bins)
	c.Bins = slices.Compact(c.Bins)

	return c
}

func cleanPath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

func exists(dir, rel string) bool {
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))

	return err == nil && !info.IsDir()
}
