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

package visibility

import "fillmore-labs.com/panicdoc/internal/syntax"

// Resolver answers visibility questions for declarations.
type Resolver struct{}

// IsExternallyVisible reports whether decl is marked public and every scope
// enclosing it is externally visible.
func (Resolver) IsExternallyVisible(decl *syntax.Node, scopes *Stack) bool {
	return decl.Vis == syntax.Public && scopes.Visible()
}

// ScopeVisible reports whether a declaration at this position could be
// visible at all, regardless of its own marker.
func (Resolver) ScopeVisible(scopes *Stack) bool {
	return scopes.Visible()
}
