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

package a

type Exported struct{ items []int }

// At returns the element at i.
func (e *Exported) At(i int) int { // want `Exported.At may panic \(computed index\)`
	return e.items[i]
}

func (e Exported) last() int {
	return e.items[len(e.items)-1]
}

type hidden struct{}

func (hidden) Boom() {
	panic("boom")
}

type List[E any] []E

func (l List[E]) Head() E { // want `List.Head may panic \(computed index\)`
	return l[0]
}

type Reader interface {
	Read() int
}
