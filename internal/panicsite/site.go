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

// Package panicsite classifies syntax nodes as candidate panic sites.
//
// The predicate is a conservative over-approximation: it flags constructs that
// can abort the current execution path, without any reachability analysis.
package panicsite

import "fillmore-labs.com/panicdoc/internal/syntax"

//go:generate go tool stringer -type Kind -linecomment

// Kind is the category of a candidate panic site.
type Kind uint8

const (
	Abort       Kind = iota // explicit abort
	Unwrap                  // forced unwrap
	Assert                  // assertion
	Index                   // computed index
	Arithmetic              // trapping arithmetic
	Unreachable             // unreachable marker
)

// Site is a candidate panic site.
type Site struct {
	Kind Kind
	Span syntax.Span
}
