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

// converter translates one parsed file.
type converter struct {
	src []byte
}

func (c converter) file(root *sitter.Node) *syntax.Node {
	return &syntax.Node{
		Kind:     syntax.File,
		Span:     span(root),
		Children: c.items(root, "", false),
	}
}

// items translates the items of a source file, module or declaration list.
// Names are prefixed with qual. Functions are public when inTrait is set.
func (c converter) items(list *sitter.Node, qual string, inTrait bool) []*syntax.Node {
	hidden := c.hiddenTypes(list)

	var (
		nodes []*syntax.Node
		doc   []string
	)

	for i := range int(list.NamedChildCount()) {
		item := list.NamedChild(i)

		switch item.Type() {
		case "line_comment", "block_comment":
			if text, ok := docComment(item.Content(c.src)); ok {
				doc = append(doc, text)
			}

			continue

		case "attribute_item":
			if text, ok := c.docAttribute(item); ok {
				doc = append(doc, text)
			}

			continue
		}

		d := strings.Join(doc, "\n")
		doc = doc[:0]

		if n := c.item(item, qual, d, inTrait, hidden); n != nil {
			nodes = append(nodes, n)
		}
	}

	return nodes
}

func (c converter) item(item *sitter.Node, qual, doc string, inTrait bool, hidden map[string]syntax.Visibility) *syntax.Node {
	switch item.Type() {
	case "function_item", "function_signature_item":
		n := &syntax.Node{
			Kind: syntax.Func,
			Name: qual + c.field(item, "name"),
			Vis:  c.visibility(item),
			Doc:  doc,
			Span: span(item),
		}

		if inTrait {
			n.Vis = syntax.Public
		}

		if body := item.ChildByFieldName("body"); body != nil {
			n.Body = c.expr(body)
			if n.Body == nil {
				n.Body = &syntax.Node{Kind: syntax.Block, Span: span(body)}
			}
		}

		return n

	case "mod_item":
		name := c.field(item, "name")
		n := &syntax.Node{
			Kind: syntax.Module,
			Name: qual + name,
			Vis:  c.visibility(item),
			Doc:  doc,
			Span: span(item),
		}

		if body := item.ChildByFieldName("body"); body != nil {
			n.Children = c.items(body, qual+name+"::", false)
		} else {
			n.Attr |= syntax.External
		}

		return n

	case "impl_item":
		name := typeName(c.field(item, "type"))
		trait := item.ChildByFieldName("trait") != nil

		n := &syntax.Node{
			Kind: syntax.TypeScope,
			Name: qual + name,
			Vis:  syntax.Implicit,
			Span: span(item),
		}

		if vis, ok := hidden[name]; ok {
			n.Vis = vis
		}

		if body := item.ChildByFieldName("body"); body != nil {
			n.Children = c.items(body, qual+name+"::", trait)
		}

		return n

	case "trait_item":
		name := c.field(item, "name")
		n := &syntax.Node{
			Kind: syntax.TypeScope,
			Name: qual + name,
			Vis:  c.visibility(item),
			Doc:  doc,
			Span: span(item),
		}

		if body := item.ChildByFieldName("body"); body != nil {
			n.Children = c.items(body, qual+name+"::", true)
		}

		return n

	default:
		return nil
	}
}

// hiddenTypes returns the visibility of types in list that are not declared "pub".
func (c converter) hiddenTypes(list *sitter.Node) map[string]syntax.Visibility {
	hidden := make(map[string]syntax.Visibility)

	for i := range int(list.NamedChildCount()) {
		item := list.NamedChild(i)

		switch item.Type() {
		case "struct_item", "enum_item", "union_item", "type_item":
			if vis := c.visibility(item); vis != syntax.Public {
				hidden[c.field(item, "name")] = vis
			}
		}
	}

	return hidden
}

func (c converter) field(n *sitter.Node, name string) string {
	if f := n.ChildByFieldName(name); f != nil {
		return f.Content(c.src)
	}

	return ""
}

// visibility returns the declared visibility of an item.
func (c converter) visibility(item *sitter.Node) syntax.Visibility {
	for i := range int(item.NamedChildCount()) {
		child := item.NamedChild(i)
		if child.Type() != "visibility_modifier" {
			continue
		}

		switch strings.Join(strings.Fields(child.Content(c.src)), "") {
		case "pub":
			return syntax.Public

		case "pub(self)":
			return syntax.Private

		default: // pub(crate), pub(super), pub(in path), crate
			return syntax.Restricted
		}
	}

	return syntax.Private
}

// typeName reduces a type like "Wrapper<T>" or "crate::io::Reader" to its base name.
func typeName(typ string) string {
	if i := strings.IndexByte(typ, '<'); i >= 0 {
		typ = typ[:i]
	}

	if i := strings.LastIndex(typ, "::"); i >= 0 {
		typ = typ[i+2:]
	}

	return strings.TrimSpace(strings.TrimLeft(typ, "&*"))
}

// docComment returns the text of an outer doc comment.
func docComment(comment string) (string, bool) {
	switch {
	case strings.HasPrefix(comment, "////"):
		return "", false

	case strings.HasPrefix(comment, "///"):
		text := strings.TrimPrefix(comment, "///")

		return strings.TrimPrefix(strings.TrimRight(text, "\r\n"), " "), true

	case comment == "/**/" || strings.HasPrefix(comment, "/***"):
		return "", false

	case strings.HasPrefix(comment, "/**"):
		text := strings.TrimSuffix(strings.TrimPrefix(comment, "/**"), "*/")

		lines := strings.Split(strings.TrimSpace(text), "\n")
		for i, line := range lines {
			line = strings.TrimSpace(line)
			lines[i] = strings.TrimPrefix(strings.TrimPrefix(line, "*"), " ")
		}

		return strings.Join(lines, "\n"), true

	default:
		return "", false
	}
}

// docAttribute returns the text of a #[doc = "..."] attribute.
func (c converter) docAttribute(item *sitter.Node) (string, bool) {
	text := strings.TrimSpace(item.Content(c.src))
	text = strings.TrimSuffix(strings.TrimPrefix(text, "#["), "]")

	rest, ok := strings.CutPrefix(strings.TrimSpace(text), "doc")
	if !ok {
		return "", false
	}

	rest, ok = strings.CutPrefix(strings.TrimSpace(rest), "=")
	if !ok {
		return "", false
	}

	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", false
	}

	return rest[1 : len(rest)-1], true
}

func span(n *sitter.Node) syntax.Span {
	return syntax.Span{Start: startPoint(n), End: endPoint(n)}
}

func startPoint(n *sitter.Node) syntax.Point {
	p := n.StartPoint()

	return syntax.Point{Line: int(p.Row) + 1, Column: int(p.Column) + 1, Offset: int(n.StartByte())}
}

func endPoint(n *sitter.Node) syntax.Point {
	p := n.EndPoint()

	return syntax.Point{Line: int(p.Row) + 1, Column: int(p.Column) + 1, Offset: int(n.EndByte())}
}
