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

// Package analyzer implements the panicdoc static analysis pass.
//
// # Overview
//
// panicdoc reports exported functions and methods that may panic but whose
// documentation does not say so. A function is reported when its body
// contains a candidate panic site:
//
//   - explicit aborts: panic, log.Fatal, os.Exit and similar
//   - forced unwraps: unchecked type assertions and Must helpers
//   - computed indices into slices, strings and arrays
//   - integer division by a non-constant divisor
//
// Sites are found syntactically, without reachability analysis.
//
// # Documentation
//
// A doc comment discloses panics with a heading line
//
//	// # Panics
//	//
//	// Panics if the input is empty.
//
// or by mentioning one of the keywords panic, abort or fatal.
//
// # Visibility
//
// Only the public API is checked: exported functions and methods of exported
// types in importable packages. Test files, package main and internal
// packages are skipped, the latter unless -internal is set.
//
// A //nolint:panicdoc comment on a declaration or the package clause
// suppresses the check.
package analyzer
