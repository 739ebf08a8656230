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

package panicsite

import "fillmore-labs.com/panicdoc/internal/syntax"

// Predicate decides which nodes are candidate panic sites.
type Predicate struct {
	// Vocabulary is the language-specific knowledge.
	Vocabulary *Vocabulary

	// OverflowChecks is true when the build configuration under analysis traps on integer overflow.
	OverflowChecks bool
}

// Classify returns the candidate panic site represented by n, if any.
// The site span is the span of n, the exact subexpression.
func (p Predicate) Classify(n *syntax.Node) (Site, bool) {
	kind, ok := p.classify(n)
	if !ok {
		return Site{}, false
	}

	return Site{Kind: kind, Span: n.Span}, true
}

func (p Predicate) classify(n *syntax.Node) (Kind, bool) {
	v := p.Vocabulary

	switch n.Kind {
	case syntax.Call:
		switch {
		case v.AbortCalls.Has(n.Text):
			return Abort, true

		case v.mustCall(n.Text):
			return Unwrap, true
		}

	case syntax.MethodCall:
		if v.UnwrapMethods.Has(n.Text) {
			return Unwrap, true
		}

	case syntax.MacroCall:
		switch {
		case v.AbortMacros.Has(n.Text):
			return Abort, true

		case v.AssertMacros.Has(n.Text):
			return Assert, true

		case v.UnreachableMacros.Has(n.Text):
			return Unreachable, true
		}

	case syntax.TypeAssert:
		if !n.Attr.Has(syntax.CommaOk) {
			return Unwrap, true
		}

	case syntax.Index, syntax.Slice:
		if !n.Attr.Has(syntax.Constant) {
			return Index, true
		}

	case syntax.Binary, syntax.AssignOp:
		if p.traps(n) {
			return Arithmetic, true
		}

	case syntax.Other, syntax.File, syntax.Module, syntax.TypeScope,
		syntax.Func, syntax.Closure, syntax.Block:
	}

	return 0, false
}

// traps reports whether integer arithmetic n traps in the build configuration.
func (p Predicate) traps(n *syntax.Node) bool {
	if n.Attr&(syntax.Constant|syntax.NonInteger) != 0 {
		return false
	}

	v := p.Vocabulary

	return v.DivisionOps.Has(n.Text) || p.OverflowChecks && v.OverflowOps.Has(n.Text)
}
