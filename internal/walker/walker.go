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

// Package walker finds public declarations that may panic without saying so.
//
// A walk moves through three phases. While descending, scope nodes are
// pushed onto the visibility stack and declarations that are not externally
// visible are pruned. A visible declaration with a body is scanned: every
// node of the body is classified by the panic site predicate, including
// nodes inside closures and nested functions. After the scan, a [Finding] is
// emitted when sites were found and the documentation does not disclose them.
//
// Walks are deterministic, never fail on a well-formed tree and share no
// state, so independent files can be walked in parallel.
package walker

import (
	"fillmore-labs.com/panicdoc/internal/doccheck"
	"fillmore-labs.com/panicdoc/internal/panicsite"
	"fillmore-labs.com/panicdoc/internal/syntax"
	"fillmore-labs.com/panicdoc/internal/visibility"
)

// Finding is a public declaration with undisclosed candidate panic sites.
type Finding struct {
	// Path labels the file the declaration is in.
	Path string

	// Name is the qualified declaration name.
	Name string

	// Span is the source range of the declaration.
	Span syntax.Span

	// Sites are the candidate panic sites in source order.
	Sites []panicsite.Site
}

// Walker holds the predicates used during a walk.
type Walker struct {
	Resolver  visibility.Resolver
	Predicate panicsite.Predicate
	Docs      doccheck.Checker
}

// New creates a [Walker] with the default documentation vocabulary.
func New(predicate panicsite.Predicate) Walker {
	return Walker{
		Predicate: predicate,
		Docs:      doccheck.New(nil, nil),
	}
}

// Walk returns the findings of a tree in the order their declarations appear.
func (w Walker) Walk(root *syntax.Node, path string) []Finding {
	t := traversal{Walker: w, path: path}
	t.descend(root)

	return t.findings
}

// traversal is the state of a single walk.
type traversal struct {
	Walker
	path     string
	scopes   visibility.Stack
	findings []Finding
}

// descend visits n outside of any public body.
func (t *traversal) descend(n *syntax.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case syntax.Func:
		t.declaration(n)

	case syntax.File, syntax.Module, syntax.TypeScope:
		t.scopes.Push(visibility.Marker(n))
		t.descendChildren(n)
		t.scopes.Pop()

	default:
		t.descendChildren(n)
	}
}

func (t *traversal) descendChildren(n *syntax.Node) {
	for _, c := range n.Children {
		t.descend(c)
	}
}

// declaration scans the body of an externally visible function and emits a finding.
func (t *traversal) declaration(decl *syntax.Node) {
	if !t.Resolver.IsExternallyVisible(decl, &t.scopes) || !decl.HasBody() {
		return // pruned
	}

	var sites []panicsite.Site
	for n := range decl.Body.Preorder() {
		if site, ok := t.Predicate.Classify(n); ok {
			sites = append(sites, site)
		}
	}

	t.emit(decl, sites)
}

// emit finalizes a finding for decl.
func (t *traversal) emit(decl *syntax.Node, sites []panicsite.Site) {
	if len(sites) == 0 || t.Docs.DocumentsPanics(decl.Doc) {
		return
	}

	t.findings = append(t.findings, Finding{
		Path:  t.path,
		Name:  decl.Name,
		Span:  decl.Span,
		Sites: sites,
	})
}
