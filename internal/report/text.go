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

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"fillmore-labs.com/panicdoc/internal/walker"
)

// Text renders findings as human readable text, grouped by file.
type Text struct {
	// Color enables ANSI colors.
	Color bool
}

// palette holds the colors of one rendering.
type palette struct {
	file, name, pos, kind *color.Color
}

func (t Text) palette() palette {
	p := palette{
		file: color.New(color.Bold, color.Underline),
		name: color.New(color.FgYellow, color.Bold),
		pos:  color.New(color.Faint),
		kind: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{p.file, p.name, p.pos, p.kind} {
		if t.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Render writes findings to w. Files appear in the order of their first finding.
func (t Text) Render(w io.Writer, findings []walker.Finding) error {
	if len(findings) == 0 {
		return nil
	}

	p := t.palette()

	byPath := lo.GroupBy(findings, func(f walker.Finding) string { return f.Path })
	paths := lo.Uniq(lo.Map(findings, func(f walker.Finding, _ int) string { return f.Path }))

	var b strings.Builder
	for _, path := range paths {
		b.WriteString(p.file.Sprint(path))
		b.WriteByte('\n')

		for _, f := range byPath[path] {
			fmt.Fprintf(&b, "  %s %s\n", p.pos.Sprint(f.Span.Start), p.name.Sprint(f.Name))

			for _, site := range f.Sites {
				fmt.Fprintf(&b, "    %s %s\n", p.pos.Sprint(site.Span.Start), p.kind.Sprint(site.Kind))
			}
		}

		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%s in %s may panic without documenting it\n",
		plural(len(findings), "function"), plural(len(paths), "file"))

	_, err := io.WriteString(w, b.String())

	return err
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
