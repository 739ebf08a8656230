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

// Package visibility decides whether a declaration is observable from outside
// the module that defines it.
//
// Visibility is the logical AND of the whole scope chain: a public function
// inside a private module is not part of the public API.
package visibility

import "fillmore-labs.com/panicdoc/internal/syntax"

// Stack is the chain of enclosing scope markers, outermost first.
type Stack struct {
	markers []syntax.Visibility
	hidden  int // number of non-visible markers on the stack
}

// Push enters a scope with the given marker.
func (s *Stack) Push(v syntax.Visibility) {
	s.markers = append(s.markers, v)
	if !scopeVisible(v) {
		s.hidden++
	}
}

// Pop leaves the innermost scope.
func (s *Stack) Pop() {
	last := len(s.markers) - 1
	if last < 0 {
		return
	}

	if !scopeVisible(s.markers[last]) {
		s.hidden--
	}

	s.markers = s.markers[:last]
}

// Depth returns the number of enclosing scopes.
func (s *Stack) Depth() int {
	return len(s.markers)
}

// Visible reports whether every scope on the stack is externally visible.
func (s *Stack) Visible() bool {
	return s.hidden == 0
}

// Marker returns the marker a node contributes when entered as a scope.
// Function bodies are opaque: nothing declared inside one is nameable from outside.
func Marker(n *syntax.Node) syntax.Visibility {
	if n.Kind == syntax.Func {
		return syntax.Private
	}

	return n.Vis
}

func scopeVisible(v syntax.Visibility) bool {
	switch v {
	case syntax.Public, syntax.Implicit:
		return true

	default:
		return false
	}
}
