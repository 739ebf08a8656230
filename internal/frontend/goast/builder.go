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

// Package goast translates Go syntax trees into the language-neutral form.
//
// Callees are resolved through type information, so shadowed builtins and
// method values are named correctly. Index and arithmetic nodes carry the
// facts the type checker establishes: map indexing is never a site, constant
// indices into arrays and constant divisors are checked at compile time.
package goast

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/panicdoc/internal/syntax"
)

// Builder translates files of one package.
type Builder struct {
	// Info is the type information of the package. Without it, callees are
	// named syntactically and all index expressions count as computed.
	Info *types.Info

	// Skip reports declarations to leave out.
	Skip func(*ast.FuncDecl) bool
}

// FileVisibility returns the visibility of a file's top-level scope. Test
// files, commands and internal packages are not part of a public API.
func FileVisibility(pkg *types.Package, filename string, includeInternal bool) syntax.Visibility {
	switch {
	case strings.HasSuffix(filename, "_test.go"),
		pkg.Name() == "main",
		!includeInternal && isInternal(pkg.Path()):
		return syntax.Private

	default:
		return syntax.Implicit
	}
}

func isInternal(path string) bool {
	return slices.Contains(strings.Split(path, "/"), "internal")
}

// File translates the file at cursor f.
func (b Builder) File(handle *token.File, f inspector.Cursor, vis syntax.Visibility) *syntax.Node {
	file, ok := f.Node().(*ast.File)
	if !ok {
		return nil
	}

	t := translation{Builder: b, handle: handle}

	root := &syntax.Node{
		Kind: syntax.File,
		Name: file.Name.Name,
		Vis:  vis,
		Span: t.span(file),
	}

	for c := range f.Children() {
		fun, ok := c.Node().(*ast.FuncDecl)
		if !ok || b.Skip != nil && b.Skip(fun) {
			continue
		}

		root.Children = append(root.Children, t.funcDecl(c, fun))
	}

	return root
}

type translation struct {
	Builder
	handle *token.File
}

// funcDecl translates a function declaration. Methods are wrapped in a scope
// for their receiver type.
func (t translation) funcDecl(c inspector.Cursor, fun *ast.FuncDecl) *syntax.Node {
	name := fun.Name.Name
	recv := receiverName(fun.Recv)
	if recv != "" {
		name = recv + "." + name
	}

	decl := &syntax.Node{
		Kind: syntax.Func,
		Name: name,
		Vis:  exported(fun.Name.Name),
		Doc:  fun.Doc.Text(),
		Span: t.span(fun),
	}

	if fun.Body != nil {
		decl.Body = t.node(c.ChildAt(edge.FuncDecl_Body, -1))
	}

	if recv == "" {
		return decl
	}

	return &syntax.Node{
		Kind:     syntax.TypeScope,
		Name:     recv,
		Vis:      exported(recv),
		Span:     t.span(fun.Recv),
		Children: []*syntax.Node{decl},
	}
}

// receiverName returns the base type name of a method receiver, or "" for functions.
func receiverName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}

	typ := recv.List[0].Type

	for {
		switch e := typ.(type) {
		case *ast.StarExpr:
			typ = e.X

		case *ast.ParenExpr:
			typ = e.X

		case *ast.IndexExpr:
			typ = e.X

		case *ast.IndexListExpr:
			typ = e.X

		case *ast.Ident:
			return e.Name

		default:
			return "_"
		}
	}
}

func exported(name string) syntax.Visibility {
	if ast.IsExported(name) {
		return syntax.Public
	}

	return syntax.Private
}

// node translates the subtree at c. Leaves that can not contain a site are
// dropped.
func (t translation) node(c inspector.Cursor) *syntax.Node {
	switch c.Node().(type) {
	case *ast.Ident, *ast.BasicLit:
		return nil
	}

	n := &syntax.Node{Kind: syntax.Other, Span: t.span(c.Node())}

	switch e := c.Node().(type) {
	case *ast.FuncLit:
		n.Kind = syntax.Closure

	case *ast.BlockStmt:
		n.Kind = syntax.Block

	case *ast.CallExpr:
		n.Kind, n.Text = syntax.Call, t.callee(e)

	case *ast.TypeAssertExpr:
		n.Kind = syntax.TypeAssert
		if e.Type == nil || commaOk(c) {
			n.Attr |= syntax.CommaOk
		}

	case *ast.IndexExpr:
		if t.indexable(e.X) {
			n.Kind = syntax.Index
			if t.constantIndex(e.X, e.Index) {
				n.Attr |= syntax.Constant
			}
		}

	case *ast.SliceExpr:
		n.Kind = syntax.Slice
		if e.Low == nil && e.High == nil && e.Max == nil || t.constantIndex(e.X, e.Low, e.High, e.Max) {
			n.Attr |= syntax.Constant
		}

	case *ast.BinaryExpr:
		if op, ok := division(e.Op); ok {
			n.Kind, n.Text = syntax.Binary, op
			n.Attr |= t.arithmetic(e, e.Y)
		}

		if op, ok := shift(e.Op); ok {
			n.Kind, n.Text = syntax.Binary, op
			n.Attr |= t.shiftCount(e.Y)
		}

	case *ast.AssignStmt:
		if len(e.Lhs) != 1 || len(e.Rhs) != 1 {
			break
		}

		if op, ok := division(e.Tok); ok {
			n.Kind, n.Text = syntax.AssignOp, op
			n.Attr |= t.arithmetic(e.Lhs[0], e.Rhs[0])
		}

		if op, ok := shift(e.Tok); ok {
			n.Kind, n.Text = syntax.AssignOp, op
			n.Attr |= t.shiftCount(e.Rhs[0])
		}
	}

	for cc := range c.Children() {
		if child := t.node(cc); child != nil {
			n.Children = append(n.Children, child)
		}
	}

	if n.Kind == syntax.Other && len(n.Children) == 0 {
		return nil
	}

	return n
}

func division(op token.Token) (string, bool) {
	switch op {
	case token.QUO, token.QUO_ASSIGN:
		return "/", true

	case token.REM, token.REM_ASSIGN:
		return "%", true

	default:
		return "", false
	}
}

func shift(op token.Token) (string, bool) {
	switch op {
	case token.SHL, token.SHL_ASSIGN:
		return "<<", true

	case token.SHR, token.SHR_ASSIGN:
		return ">>", true

	default:
		return "", false
	}
}

// commaOk reports whether the type assertion at c is used in a two-value assignment.
func commaOk(c inspector.Cursor) bool {
	for k, _ := c.ParentEdge(); k == edge.ParenExpr_X; k, _ = c.ParentEdge() {
		c = c.Parent()
	}

	switch k, _ := c.ParentEdge(); k {
	case edge.AssignStmt_Rhs:
		asgn := c.Parent().Node().(*ast.AssignStmt)

		return len(asgn.Lhs) == 2 && len(asgn.Rhs) == 1

	case edge.ValueSpec_Values:
		spec := c.Parent().Node().(*ast.ValueSpec)

		return len(spec.Names) == 2 && len(spec.Values) == 1

	default:
		return false
	}
}

// callee names the function called by n, or returns "" when it is not a
// statically known function.
func (t translation) callee(n *ast.CallExpr) string {
	ex := n.Fun

unwrap:
	switch e := ex.(type) {
	case *ast.Ident:
		return t.funcName(e, "")

	case *ast.SelectorExpr:
		var qualifier string
		if x, ok := e.X.(*ast.Ident); ok {
			qualifier = x.Name
		}

		return t.funcName(e.Sel, qualifier)

	case *ast.IndexExpr: // Generic function instantiation ("f[T]")
		ex = e.X
		goto unwrap

	case *ast.IndexListExpr: // Generic function instantiation ("f[T, U]")
		ex = e.X
		goto unwrap

	case *ast.ParenExpr:
		ex = e.X
		goto unwrap

	default: // Function values and literals
		return ""
	}
}

func (t translation) funcName(id *ast.Ident, qualifier string) string {
	if t.Info == nil {
		if qualifier != "" {
			return qualifier + "." + id.Name
		}

		return id.Name
	}

	switch obj := t.Info.Uses[id].(type) {
	case *types.Func:
		return FuncNameOf(obj).String()

	case *types.Builtin:
		return obj.Name()

	default:
		return ""
	}
}

// indexable reports whether indexing x can go out of range. Maps, generic
// instantiations and type expressions can't.
func (t translation) indexable(x ast.Expr) bool {
	if t.Info == nil {
		return true
	}

	tv, ok := t.Info.Types[x]
	if !ok {
		return true
	}

	if tv.IsType() {
		return false
	}

	switch u := tv.Type.Underlying().(type) {
	case *types.Map, *types.Signature:
		return false

	case *types.Interface: // type parameter constraint
		return !allMaps(u)

	default:
		return true
	}
}

// allMaps reports whether every type in the type set of a constraint is a map.
func allMaps(iface *types.Interface) bool {
	found := false

	for i := range iface.NumEmbeddeds() {
		switch e := iface.EmbeddedType(i).(type) {
		case *types.Union:
			for j := range e.Len() {
				if _, ok := e.Term(j).Type().Underlying().(*types.Map); !ok {
					return false
				}
			}

		default:
			if _, ok := e.Underlying().(*types.Map); !ok {
				return false
			}
		}

		found = true
	}

	return found
}

// constantIndex reports whether constant indices into x are checked at compile
// time, meaning x is an array or a constant string and all present indices are constant.
func (t translation) constantIndex(x ast.Expr, indices ...ast.Expr) bool {
	if t.Info == nil {
		return false
	}

	for _, idx := range indices {
		if idx != nil && t.Info.Types[idx].Value == nil {
			return false
		}
	}

	tv := t.Info.Types[x]
	if tv.Value != nil {
		return true // constant string
	}

	if tv.Type == nil {
		return false
	}

	typ := tv.Type.Underlying()
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = ptr.Elem().Underlying()
	}

	_, ok := typ.(*types.Array)

	return ok
}

// arithmetic returns the attributes of a division with result expression res and divisor y.
func (t translation) arithmetic(res, y ast.Expr) syntax.Attr {
	if t.Info == nil {
		return 0
	}

	var attr syntax.Attr
	if t.Info.Types[y].Value != nil {
		attr |= syntax.Constant
	}

	if typ := t.Info.TypeOf(res); typ != nil {
		if basic, ok := typ.Underlying().(*types.Basic); ok && basic.Info()&types.IsInteger == 0 {
			attr |= syntax.NonInteger
		}
	}

	return attr
}

// shiftCount returns the attributes of a shift by count. Constant and unsigned counts are never negative.
func (t translation) shiftCount(count ast.Expr) syntax.Attr {
	if t.Info == nil {
		return 0
	}

	tv := t.Info.Types[count]
	if tv.Value != nil {
		return syntax.Constant
	}

	if tv.Type != nil {
		if basic, ok := tv.Type.Underlying().(*types.Basic); ok && basic.Info()&types.IsUnsigned != 0 {
			return syntax.Constant
		}
	}

	return 0
}

func (t translation) span(n ast.Node) syntax.Span {
	return syntax.Span{Start: t.point(n.Pos()), End: t.point(n.End())}
}

func (t translation) point(pos token.Pos) syntax.Point {
	if t.handle == nil || !pos.IsValid() {
		return syntax.Point{}
	}

	p := t.handle.PositionFor(pos, false)

	return syntax.Point{Line: p.Line, Column: p.Column, Offset: p.Offset}
}
