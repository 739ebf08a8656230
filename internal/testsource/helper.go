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

// Package testsource provides utilities for parsing and type-checking Go
// source code in tests.
//
// It handles the boilerplate of turning a source fragment into a type-checked
// file with an inspector cursor, as the Go frontend expects it.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

// Package is the import path of parsed sources.
const Package = "example.com/test"

const filename = "test.go"

// Parse parses a Go source fragment into an AST.
// The fragment `src` is automatically prefixed with a `package test` clause,
// so tests can consist of declarations only.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - inspector.Cursor: A cursor positioned at the file.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, file inspector.Cursor) {
	tb.Helper()

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, wrapSource(src), parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Children() {
		return fset, f, c
	}

	tb.Fatal("Can't find file")

	return nil, nil, root
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:     make(map[ast.Expr]types.TypeAndValue),
		Defs:      make(map[*ast.Ident]types.Object),
		Uses:      make(map[*ast.Ident]types.Object),
		Instances: make(map[*ast.Ident]types.Instance),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(Package, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return pkg, info
}

// Handle returns the [token.File] of f.
func Handle(fset *token.FileSet, f *ast.File) *token.File {
	return fset.File(f.FileStart)
}

func wrapSource(src string) string {
	const header = "package test\n\n"

	var srcFile strings.Builder
	srcFile.Grow(len(header) + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return srcFile.String()
}
