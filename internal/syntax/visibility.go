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

// Visibility is the declared accessibility of an item.
type Visibility uint8

const (
	// Private is the default, absent visibility.
	Private Visibility = iota

	// Public is observable outside the defining module.
	Public

	// Restricted is visible to a bounded part of the program only, like pub(crate).
	Restricted

	// Implicit is the pass-through visibility of scopes without a marker of
	// their own, like a file root or an inherent impl block.
	Implicit
)

// String returns a lowercase name.
func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"

	case Public:
		return "public"

	case Restricted:
		return "restricted"

	case Implicit:
		return "implicit"

	default:
		return "invalid"
	}
}
