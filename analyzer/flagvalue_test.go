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

package analyzer_test

import (
	"flag"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/panicdoc/analyzer"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		flag string
		want string
	}{
		{
			name: "Enable",
			args: []string{"-generated"},
			flag: "generated",
			want: "true",
		},
		{
			name: "Disable",
			args: []string{"-internal=true", "-internal=off"},
			flag: "internal",
			want: "false",
		},
		{
			name: "Keywords",
			args: []string{"-keywords", "crash, die", "-keywords=halt"},
			flag: "keywords",
			want: "crash,die,halt",
		},
		{
			name: "Headings",
			args: []string{"-headings=errors,"},
			flag: "headings",
			want: "errors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()

			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if got := a.Flags.Lookup(tt.flag).Value.String(); got != tt.want {
				t.Errorf("Flag %s = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}

func TestFlagGetter(t *testing.T) {
	t.Parallel()

	a := New(WithGenerated(true), WithKeywords("crash"))

	generated, ok := a.Flags.Lookup("generated").Value.(flag.Getter)
	if !ok || generated.Get() != true {
		t.Errorf("Flag generated = %v, want true", generated)
	}

	keywords, ok := a.Flags.Lookup("keywords").Value.(flag.Getter)
	if got, _ := keywords.Get().([]string); !ok || !slices.Equal(got, []string{"crash"}) {
		t.Errorf("Flag keywords = %v, want [crash]", got)
	}
}

func TestInvalidFlag(t *testing.T) {
	t.Parallel()

	a := New()
	a.Flags.Init("test", flag.ContinueOnError)
	a.Flags.SetOutput(&strings.Builder{})

	if err := a.Flags.Parse([]string{"-generated=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	a := New(WithInternal(true))

	var out strings.Builder
	a.Flags.SetOutput(&out)
	a.Flags.PrintDefaults()

	const expectedUsage = `
  -internal
    	treat internal packages as public API (default true)
`

	if got, want := out.String(), expectedUsage; !strings.Contains(got, want) {
		t.Errorf("PrintDefaults() = %q, want %q", got, want)
	}
}
