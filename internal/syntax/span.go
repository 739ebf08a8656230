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

import "fmt"

// Point is a source position.
type Point struct {
	Line   int // 1-based line
	Column int // 1-based column, in bytes
	Offset int // 0-based byte offset
}

// Before reports whether p is strictly before q.
func (p Point) Before(q Point) bool {
	return p.Offset < q.Offset
}

// String returns "line:column".
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open source range.
type Span struct {
	Start, End Point
}

// Contains reports whether s covers o.
func (s Span) Contains(o Span) bool {
	return !o.Start.Before(s.Start) && !s.End.Before(o.End)
}

// String returns "line:column-line:column".
func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}
