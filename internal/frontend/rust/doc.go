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

// Package rust translates Rust sources into the language-neutral syntax tree
// using tree-sitter.
//
// Names are qualified relative to the file: "Type::method", "module::func" or
// "Trait::method". Out-of-line module declarations ("mod foo;") are kept as
// [syntax.Module] nodes with the [syntax.External] attribute, so a driver can
// resolve the module tree across files.
//
// Parsing needs cgo. Without it, [Parser.Parse] returns [ErrNoCGO].
package rust

import "errors"

var (
	// ErrNoCGO is returned when Rust sources can't be parsed due to missing cgo.
	ErrNoCGO = errors.New("rust parsing requires cgo (tree-sitter)")

	// ErrSyntax is returned for sources with syntax errors.
	ErrSyntax = errors.New("syntax error")
)
