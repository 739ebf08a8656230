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

package syntax_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/panicdoc/internal/syntax"
)

func TestPreorder(t *testing.T) {
	t.Parallel()

	tree := &Node{
		Kind: File,
		Children: []*Node{
			{Kind: Func, Name: "a", Body: &Node{Kind: Block, Children: []*Node{{Kind: Call, Text: "panic"}}}},
			{Kind: Module, Children: []*Node{{Kind: Func, Name: "b"}}},
		},
	}

	var got []Kind
	for n := range tree.Preorder() {
		got = append(got, n.Kind)
	}

	want := []Kind{File, Func, Block, Call, Module, Func}
	if !slices.Equal(got, want) {
		t.Errorf("Preorder() = %v, want %v", got, want)
	}
}

func TestPreorderStop(t *testing.T) {
	t.Parallel()

	tree := &Node{Kind: Block, Children: []*Node{{Kind: Call}, {Kind: Index}}}

	n := 0
	for range tree.Preorder() {
		n++
		if n == 2 {
			break
		}
	}

	if n != 2 {
		t.Errorf("Visited %d nodes, want 2", n)
	}
}

func TestSpanContains(t *testing.T) {
	t.Parallel()

	outer := Span{Start: Point{Line: 1, Column: 1, Offset: 0}, End: Point{Line: 3, Column: 2, Offset: 40}}

	tests := [...]struct {
		name  string
		inner Span
		want  bool
	}{
		{"inside", Span{Start: Point{Offset: 10}, End: Point{Offset: 20}}, true},
		{"same", outer, true},
		{"overlap end", Span{Start: Point{Offset: 30}, End: Point{Offset: 41}}, false},
		{"before", Span{Start: Point{Offset: 0}, End: Point{Offset: 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestKindScope(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{File, Module, TypeScope, Func} {
		if !k.Scope() {
			t.Errorf("%v.Scope() = false, want true", k)
		}
	}

	for _, k := range []Kind{Other, Closure, Block, Call} {
		if k.Scope() {
			t.Errorf("%v.Scope() = true, want false", k)
		}
	}
}
