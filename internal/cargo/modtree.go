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
	"path"
	"strings"

	"fillmore-labs.com/panicdoc/internal/syntax"
	"fillmore-labs.com/panicdoc/internal/visibility"
)

// Module is the place of a source file in the module tree of its crate.
type Module struct {
	// Path is the module path below the crate root.
	Path []string

	// Vis is the visibility of the file's top-level scope.
	Vis syntax.Visibility

	// Orphan is set for files not reached from any crate root.
	Orphan bool
}

// Qualify prefixes name with the module path.
func (m Module) Qualify(name string) string {
	if len(m.Path) == 0 {
		return name
	}

	return strings.Join(m.Path, "::") + "::" + name
}

// Declaration is an out-of-line module declaration ("mod foo;").
type Declaration struct {
	// Segments are the names of the enclosing inline modules and the module itself.
	Segments []string

	// Visible is set when the module is externally visible from the declaring file.
	Visible bool
}

// Declarations returns the out-of-line module declarations of a file.
func Declarations(tree *syntax.Node) []Declaration {
	if tree == nil {
		return nil
	}

	var (
		r      visibility.Resolver
		scopes visibility.Stack
		decls  []Declaration
	)

	var visit func(n *syntax.Node)
	visit = func(n *syntax.Node) {
		for _, c := range n.Children {
			if c.Kind != syntax.Module {
				continue
			}

			if c.Attr.Has(syntax.External) {
				decls = append(decls, Declaration{
					Segments: strings.Split(c.Name, "::"),
					Visible:  r.IsExternallyVisible(c, &scopes),
				})

				continue
			}

			scopes.Push(visibility.Marker(c))
			visit(c)
			scopes.Pop()
		}
	}

	visit(tree)

	return decls
}

// ResolveModules places the files of a crate in its module tree. The library
// root is public API, binary roots are not. Files not reached from a root are
// treated as public, with a module path derived from their location.
func ResolveModules(c Crate, files []string, trees []*syntax.Node) []Module {
	index := make(map[string]int, len(files))
	for i, f := range files {
		index[f] = i
	}

	modules := make([]Module, len(files))
	reached := make([]bool, len(files))

	type entry struct {
		file int
		root bool
	}

	var queue []entry

	enqueue := func(file string, m Module, root bool) {
		i, ok := index[file]
		if !ok || reached[i] {
			return
		}

		reached[i], modules[i] = true, m
		queue = append(queue, entry{file: i, root: root})
	}

	if c.Lib != "" {
		enqueue(c.Lib, Module{Vis: syntax.Implicit}, true)
	}

	for _, bin := range c.Bins {
		enqueue(bin, Module{Vis: syntax.Private}, true)
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		parent := modules[e.file]
		dir := childDir(files[e.file], e.root)

		for _, decl := range Declarations(trees[e.file]) {
			vis := syntax.Private
			if decl.Visible && parent.Vis != syntax.Private {
				vis = syntax.Implicit
			}

			child := Module{Path: append(append([]string(nil), parent.Path...), decl.Segments...), Vis: vis}

			base := path.Join(dir, path.Join(decl.Segments...))
			if _, ok := index[base+".rs"]; ok {
				enqueue(base+".rs", child, false)
			} else {
				enqueue(base+"/mod.rs", child, false)
			}
		}
	}

	for i, f := range files {
		if !reached[i] {
			modules[i] = Module{Path: orphanPath(f), Vis: syntax.Implicit, Orphan: true}
		}
	}

	return modules
}

// childDir returns the directory holding the out-of-line modules declared in file.
func childDir(file string, root bool) string {
	dir, base := path.Split(file)
	if root || base == "mod.rs" {
		return path.Clean(dir)
	}

	return path.Join(dir, strings.TrimSuffix(base, ".rs"))
}

// orphanPath derives a module path from a file location like "src/net/tcp.rs".
func orphanPath(file string) []string {
	file = strings.TrimSuffix(strings.TrimPrefix(file, "src/"), ".rs")

	segments := strings.Split(file, "/")
	if last := len(segments) - 1; segments[last] == "mod" || segments[last] == "lib" || segments[last] == "main" {
		segments = segments[:last]
	}

	return segments
}
