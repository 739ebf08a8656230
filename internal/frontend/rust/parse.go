//go:build cgo

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

package rust

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	tsrust "github.com/smacker/go-tree-sitter/rust"

	"fillmore-labs.com/panicdoc/internal/syntax"
)

// Parser translates Rust source files. A Parser is not safe for concurrent use.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new [Parser].
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(tsrust.GetLanguage())

	return &Parser{parser: p}
}

// Parse translates src into a tree rooted at a [syntax.File] node with
// private visibility. Sources with syntax errors are rejected with [ErrSyntax].
func (p *Parser) Parse(ctx context.Context, src []byte) (*syntax.Node, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w at %s", ErrSyntax, firstError(root))
	}

	c := converter{src: src}

	return c.file(root), nil
}

// Close releases the parser.
func (p *Parser) Close() {
	p.parser.Close()
}

// Available returns whether Rust parsing is available.
func Available() bool {
	return true
}

// firstError returns the position of the first erroneous node.
func firstError(n *sitter.Node) syntax.Point {
	if n.IsMissing() || n.Type() == "ERROR" {
		return startPoint(n)
	}

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c != nil && c.HasError() {
			return firstError(c)
		}
	}

	return startPoint(n)
}
