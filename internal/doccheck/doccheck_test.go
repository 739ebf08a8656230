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

package doccheck_test

import (
	"testing"

	. "fillmore-labs.com/panicdoc/internal/doccheck"
)

func TestDocumentsPanics(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		doc  string
		want bool
	}{
		{"empty", "", false},
		{"blank", " \n\t\n", false},
		{"unrelated", "Returns the first element.", false},
		{"rust heading", "Returns the first element.\n\n# Panics\n\nIf the slice is empty.", true},
		{"nested heading", "## PANICS\nWhen empty.", true},
		{"go doc heading", "Head returns the first element.\n\n# Panics\n\nHead panics on empty input.\n", true},
		{"label", "Panics:\n  on empty input", true},
		{"aborts heading", "# Aborts\nOn allocation failure.", true},
		{"keyword", "Head will panic if s is empty.", true},
		{"keyword case", "PANICS when empty", true},
		{"fatal keyword", "Calls log.Fatal on error.", true},
		{"abort keyword", "Aborts the process.", true},
		{"other heading", "# Errors\nReturns an error.", false},
		{"hash without space", "#Panicsss", true}, // keyword fallback still matches
		{"too deep heading", "####### Errors", false},
	}

	c := New(nil, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := c.DocumentsPanics(tt.doc); got != tt.want {
				t.Errorf("DocumentsPanics(%q) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}
}

func TestExtraVocabulary(t *testing.T) {
	t.Parallel()

	c := New([]string{" Failure Modes "}, []string{"Crash", ""})

	if !c.DocumentsPanics("# Failure modes\nSee below.") {
		t.Error("Expected custom heading to be recognized")
	}

	if !c.DocumentsPanics("Will crash on nil input.") {
		t.Error("Expected custom keyword to be recognized")
	}

	if c.DocumentsPanics("# Errors\nNone.") {
		t.Error("Unexpected disclosure for unrelated heading")
	}
}
