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

package syntax

import "iter"

// Node is a node of the language-neutral syntax tree.
//
// Trees are built once by a frontend and only read afterwards.
type Node struct {
	// Kind is the variant tag.
	Kind Kind

	// Name is the qualified display name of declarations and scopes.
	Name string

	// Text is the kind-specific payload: callee, macro name or operator.
	Text string

	// Vis is the declared visibility marker.
	Vis Visibility

	// Doc is the raw documentation text attached to a declaration.
	Doc string

	// Span is the source range of this node.
	Span Span

	// Attr holds kind-specific facts established by the frontend.
	Attr Attr

	// Body is the function body of a [Func], nil when there is none.
	Body *Node

	// Children are the child nodes in source order.
	Children []*Node
}

// HasBody reports whether n is a declaration with an implementation.
func (n *Node) HasBody() bool {
	return n.Kind == Func && n.Body != nil
}

// Preorder yields n and all of its descendants in depth-first pre-order.
// The body of a [Func] is visited after its other children.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(*Node) bool) bool {
	if n == nil {
		return true
	}

	if !yield(n) {
		return false
	}

	for _, c := range n.Children {
		if !c.preorder(yield) {
			return false
		}
	}

	return n.Body.preorder(yield)
}

// Attr is a set of facts about a node.
type Attr uint8

const (
	// Constant marks an index, slice bound or divisor proven safe at compile time.
	Constant Attr = 1 << iota

	// CommaOk marks a type assertion whose failure is checked.
	CommaOk

	// NonInteger marks arithmetic known not to operate on integers.
	NonInteger

	// External marks a module declared without a body, implemented in another file.
	External
)

// Has reports whether all of the given attributes are set.
func (a Attr) Has(attr Attr) bool {
	return a&attr == attr
}
