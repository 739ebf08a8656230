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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/panicdoc/internal/syntax"
)

// expr translates the subtree at n. Leaves that can not contain a site are dropped.
func (c converter) expr(n *sitter.Node) *syntax.Node {
	switch n.Type() {
	case "line_comment", "block_comment", "attribute_item", "macro_definition",
		"identifier", "field_identifier", "type_identifier", "primitive_type",
		"integer_literal", "float_literal", "string_literal", "raw_string_literal",
		"char_literal", "boolean_literal", "self", "crate", "super":
		return nil

	case "function_item":
		return c.item(n, "", "", false, nil)

	case "macro_invocation":
		return c.macro(n)
	}

	out := &syntax.Node{Kind: syntax.Other, Span: span(n)}

	switch n.Type() {
	case "block":
		out.Kind = syntax.Block

	case "closure_expression":
		out.Kind = syntax.Closure

	case "call_expression":
		c.call(n, out)

	case "index_expression":
		out.Kind = syntax.Index
		if n.NamedChildCount() == 2 && fullRange(n.NamedChild(1)) {
			out.Attr |= syntax.Constant
		}

	case "binary_expression":
		if op := c.field(n, "operator"); arithmetic(op) {
			out.Kind, out.Text = syntax.Binary, op
			out.Attr |= c.arithmetic(op, n.ChildByFieldName("left"), n.ChildByFieldName("right"))
		}

	case "compound_assignment_expr":
		if op := strings.TrimSuffix(c.field(n, "operator"), "="); arithmetic(op) {
			out.Kind, out.Text = syntax.AssignOp, op
			out.Attr |= c.arithmetic(op, n.ChildByFieldName("left"), n.ChildByFieldName("right"))
		}
	}

	for i := range int(n.NamedChildCount()) {
		if child := c.expr(n.NamedChild(i)); child != nil {
			out.Children = append(out.Children, child)
		}
	}

	if out.Kind == syntax.Other && len(out.Children) == 0 {
		return nil
	}

	return out
}

// call classifies a call expression as a path call or a method call.
func (c converter) call(n *sitter.Node, out *syntax.Node) {
	fun := n.ChildByFieldName("function")
	if fun == nil {
		out.Kind = syntax.Call

		return
	}

	if fun.Type() == "generic_function" { // f::<T>() and x.f::<T>()
		if f := fun.ChildByFieldName("function"); f != nil {
			fun = f
		}
	}

	switch fun.Type() {
	case "field_expression":
		out.Kind, out.Text = syntax.MethodCall, c.field(fun, "field")

	case "identifier", "scoped_identifier":
		out.Kind, out.Text = syntax.Call, strings.Join(strings.Fields(fun.Content(c.src)), "")

	default: // closures and function values
		out.Kind = syntax.Call
	}
}

// macro translates a macro invocation. Token trees are scanned for method
// calls and nested macro invocations.
func (c converter) macro(n *sitter.Node) *syntax.Node {
	out := &syntax.Node{Kind: syntax.MacroCall, Span: span(n)}

	if m := n.ChildByFieldName("macro"); m != nil {
		out.Text = m.Content(c.src)
		if m.Type() == "scoped_identifier" {
			out.Text = c.field(m, "name")
		}
	}

	for i := range int(n.NamedChildCount()) {
		if child := n.NamedChild(i); child.Type() == "token_tree" {
			out.Children = append(out.Children, c.tokens(child)...)
		}
	}

	return out
}

// tokens finds ".name(" and "name!" sequences in a token tree.
func (c converter) tokens(tree *sitter.Node) []*syntax.Node {
	var found []*syntax.Node

	count := int(tree.ChildCount())
	for i := 0; i < count; i++ {
		tok := tree.Child(i)

		if tok.Type() == "token_tree" {
			found = append(found, c.tokens(tok)...)

			continue
		}

		if i+2 >= count || tok.Type() != "identifier" && tok.Type() != "." {
			continue
		}

		next, args := tree.Child(i+1), tree.Child(i+2)

		switch {
		case tok.Type() == "." && next.Type() == "identifier" && args.Type() == "token_tree" && c.parenthesized(args):
			found = append(found, &syntax.Node{
				Kind:     syntax.MethodCall,
				Text:     next.Content(c.src),
				Span:     syntax.Span{Start: startPoint(next), End: endPoint(args)},
				Children: c.tokens(args),
			})
			i += 2

		case tok.Type() == "identifier" && next.Type() == "!" && args.Type() == "token_tree":
			found = append(found, &syntax.Node{
				Kind:     syntax.MacroCall,
				Text:     tok.Content(c.src),
				Span:     syntax.Span{Start: startPoint(tok), End: endPoint(args)},
				Children: c.tokens(args),
			})
			i += 2
		}
	}

	return found
}

func (c converter) parenthesized(tree *sitter.Node) bool {
	return strings.HasPrefix(tree.Content(c.src), "(")
}

// fullRange reports whether n is the unbounded range "..".
func fullRange(n *sitter.Node) bool {
	return n.Type() == "range_expression" && n.NamedChildCount() == 0
}

func arithmetic(op string) bool {
	switch op {
	case "+", "-", "*", "/", "%", "<<", ">>":
		return true

	default:
		return false
	}
}

// arithmetic returns the attributes of an operation derivable from literal operands.
func (c converter) arithmetic(op string, left, right *sitter.Node) syntax.Attr {
	if left == nil || right == nil {
		return 0
	}

	switch {
	case nonInteger(left) || nonInteger(right):
		return syntax.NonInteger

	case left.Type() == "integer_literal" && right.Type() == "integer_literal":
		return syntax.Constant // checked by the compiler

	case right.Type() != "integer_literal":
		return 0
	}

	switch op {
	case "/", "%":
		if !zero(right.Content(c.src)) {
			return syntax.Constant
		}

	case "<<", ">>":
		return syntax.Constant
	}

	return 0
}

func nonInteger(n *sitter.Node) bool {
	switch n.Type() {
	case "float_literal", "string_literal", "raw_string_literal", "char_literal":
		return true

	default:
		return false
	}
}

// zero reports whether an integer literal like "0", "0x0" or "0_u32" is zero.
func zero(lit string) bool {
	for _, prefix := range [...]string{"0x", "0o", "0b"} {
		lit = strings.TrimPrefix(lit, prefix)
	}

	for _, r := range lit {
		switch {
		case r == '0' || r == '_':
			continue

		case r >= '1' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			return false

		default: // type suffix
			return true
		}
	}

	return true
}
