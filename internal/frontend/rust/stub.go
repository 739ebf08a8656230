//go:build !cgo

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

package rust

import (
	"context"

	"fillmore-labs.com/panicdoc/internal/syntax"
)

// Parser translates Rust source files.
// This is a stub implementation for non-cgo builds.
type Parser struct{}

// NewParser creates a new [Parser].
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns [ErrNoCGO].
func (*Parser) Parse(context.Context, []byte) (*syntax.Node, error) {
	return nil, ErrNoCGO
}

// Close releases the parser.
func (*Parser) Close() {}

// Available returns whether Rust parsing is available.
// Returns false when cgo is disabled.
func Available() bool {
	return false
}
