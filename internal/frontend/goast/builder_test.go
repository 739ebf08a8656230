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

package goast_test

import (
	"fmt"
	"go/ast"
	"go/types"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/panicdoc/internal/frontend/goast"
	"fillmore-labs.com/panicdoc/internal/panicsite"
	"fillmore-labs.com/panicdoc/internal/syntax"
	"fillmore-labs.com/panicdoc/internal/testsource"
	"fillmore-labs.com/panicdoc/internal/walker"
)

// build translates src with type information.
func build(t *testing.T, src string) *syntax.Node {
	t.Helper()

	fset, f, file := testsource.Parse(t, src)
	_, info := testsource.Check(t, fset, f)

	return Builder{Info: info}.File(testsource.Handle(fset, f), file, syntax.Implicit)
}

// sites returns the candidate panic sites of src as "line:kind" strings.
func sites(t *testing.T, src string) []string {
	t.Helper()

	tree := build(t, src)
	p := panicsite.Predicate{Vocabulary: panicsite.Go}

	var got []string
	for n := range tree.Preorder() {
		if site, ok := p.Classify(n); ok {
			got = append(got, fmt.Sprintf("%d:%s", site.Span.Start.Line, site.Kind))
		}
	}

	return got
}

func TestSites(t *testing.T) {
	t.Parallel()

	// Line numbers are offset by the two line package header.
	tests := [...]struct {
		name string
		src  string
		want []string
	}{
		{
			name: "builtin panic",
			src:  "func F() {\n\tpanic(\"boom\")\n}",
			want: []string{"4:explicit abort"},
		},
		{
			name: "shadowed panic",
			src:  "func F(panic func(string)) {\n\tpanic(\"boom\")\n}",
		},
		{
			name: "os exit",
			src:  "import \"os\"\n\nfunc F() {\n\tos.Exit(1)\n}",
			want: []string{"6:explicit abort"},
		},
		{
			name: "logger method",
			src:  "import \"log\"\n\nfunc F(l *log.Logger) {\n\tl.Fatalf(\"x\")\n}",
			want: []string{"6:explicit abort"},
		},
		{
			name: "must helper",
			src:  "import \"regexp\"\n\nfunc F() {\n\t_ = regexp.MustCompile(\"a+\")\n}",
			want: []string{"6:forced unwrap"},
		},
		{
			name: "type assertion",
			src:  "func F(v any) int {\n\treturn v.(int)\n}",
			want: []string{"4:forced unwrap"},
		},
		{
			name: "comma ok assertion",
			src:  "func F(v any) int {\n\ti, _ := v.(int)\n\tvar j, _ = v.(int)\n\treturn i + j\n}",
		},
		{
			name: "type switch",
			src:  "func F(v any) {\n\tswitch v.(type) {\n\tcase int:\n\t}\n}",
		},
		{
			name: "slice index",
			src:  "func F(s []int, i int) int {\n\treturn s[i] + s[0]\n}",
			want: []string{"4:computed index", "4:computed index"},
		},
		{
			name: "array constant index",
			src:  "func F(a [3]int, p *[3]int, i int) int {\n\treturn a[1] + p[2] + a[i]\n}",
			want: []string{"4:computed index"},
		},
		{
			name: "map index",
			src:  "func F(m map[string]int) int {\n\treturn m[\"a\"]\n}",
		},
		{
			name: "generic map index",
			src:  "func F[M ~map[string]int](m M) int {\n\treturn m[\"a\"]\n}",
		},
		{
			name: "generic instantiation",
			src:  "func id[T any](v T) T { return v }\n\nfunc F() int {\n\treturn id[int](1)\n}",
		},
		{
			name: "slices",
			src:  "func F(s []int, a [4]int, i int) {\n\t_ = s[:]\n\t_ = a[1:2]\n\t_ = s[i:]\n}",
			want: []string{"6:computed index"},
		},
		{
			name: "integer division",
			src:  "func F(a, b int, x, y float64) {\n\t_ = a / b\n\t_ = a % 3\n\t_ = x / y\n\ta /= b\n}",
			want: []string{"4:trapping arithmetic", "7:trapping arithmetic"},
		},
		{
			name: "shift count",
			src:  "func F(x, n int, u uint) {\n\t_ = x << n\n\t_ = x >> u\n\t_ = x << 3\n\tx >>= n\n\tx <<= u\n}",
			want: []string{"4:trapping arithmetic", "7:trapping arithmetic"},
		},
		{
			name: "parenthesized comma ok",
			src:  "func F(v any) {\n\tx, ok := (v.(int))\n\t_, _ = x, ok\n\tvar y, yes = ((v.(string)))\n\t_, _ = y, yes\n}",
		},
		{
			name: "parenthesized assertion",
			src:  "func F(v any) int {\n\treturn (v.(int))\n}",
			want: []string{"4:forced unwrap"},
		},
		{
			name: "closure",
			src:  "func F(s []int) func(int) int {\n\treturn func(i int) int {\n\t\treturn s[i]\n\t}\n}",
			want: []string{"5:computed index"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sites(t, tt.src); !slices.Equal(got, tt.want) {
				t.Errorf("Sites = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	const src = `// Doc for F.
func F() {}

func g() {}

type T struct{}

// M is a method.
func (*T) M() {}

type list[E any] []E

func (l list[E]) Len() int { return len(l) }
`

	tree := build(t, src)

	var got []string
	for n := range tree.Preorder() {
		switch n.Kind {
		case syntax.Func:
			got = append(got, fmt.Sprintf("func %s %v %q", n.Name, n.Vis, strings.TrimSpace(n.Doc)))

		case syntax.TypeScope:
			got = append(got, fmt.Sprintf("type %s %v", n.Name, n.Vis))
		}
	}

	want := []string{
		`func F public "Doc for F."`,
		`func g private ""`,
		`type T public`,
		`func T.M public "M is a method."`,
		`type list private`,
		`func list.Len public ""`,
	}

	if !slices.Equal(got, want) {
		t.Errorf("Declarations = %q, want %q", got, want)
	}
}

func TestSkip(t *testing.T) {
	t.Parallel()

	fset, f, file := testsource.Parse(t, "func A() {}\n\nfunc B() {}\n")

	skipB := func(fun *ast.FuncDecl) bool { return fun.Name.Name == "B" }
	tree := Builder{Skip: skipB}.File(testsource.Handle(fset, f), file, syntax.Implicit)

	if len(tree.Children) != 1 || tree.Children[0].Name != "A" {
		t.Errorf("Children = %+v, want only A", tree.Children)
	}
}

func TestWithoutTypes(t *testing.T) {
	t.Parallel()

	fset, f, file := testsource.Parse(t, "func F(s []int) {\n\tpanic(s[1])\n}\n")

	tree := Builder{}.File(testsource.Handle(fset, f), file, syntax.Implicit)

	got := walker.New(panicsite.Predicate{Vocabulary: panicsite.Go}).Walk(tree, "test.go")
	if len(got) != 1 || len(got[0].Sites) != 2 {
		t.Fatalf("Walk() = %+v, want one finding with two sites", got)
	}

	if got[0].Sites[0].Kind != panicsite.Abort || got[0].Sites[1].Kind != panicsite.Index {
		t.Errorf("Sites = %+v, want abort and index", got[0].Sites)
	}
}

func TestFileVisibility(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		path     string
		pkgName  string
		filename string
		internal bool
		want     syntax.Visibility
	}{
		{"library", "example.com/lib", "lib", "lib.go", false, syntax.Implicit},
		{"test file", "example.com/lib", "lib", "lib_test.go", false, syntax.Private},
		{"command", "example.com/cmd/tool", "main", "main.go", false, syntax.Private},
		{"internal", "example.com/internal/x", "x", "x.go", false, syntax.Private},
		{"internal included", "example.com/internal/x", "x", "x.go", true, syntax.Implicit},
		{"internal suffix", "example.com/internalx", "internalx", "x.go", false, syntax.Implicit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pkg := types.NewPackage(tt.path, tt.pkgName)
			if got := FileVisibility(pkg, tt.filename, tt.internal); got != tt.want {
				t.Errorf("FileVisibility() = %v, want %v", got, tt.want)
			}
		})
	}
}
