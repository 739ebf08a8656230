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

// Package doccheck decides whether documentation discloses failure behavior.
//
// The check is syntactic. A dedicated section heading is looked for first,
// then a plain keyword search. Whether the documented condition matches the
// actual panic site is not verified.
package doccheck

import (
	"slices"
	"strings"
)

// DefaultHeadings are the section headings recognized as a disclosure.
var DefaultHeadings = []string{"panics", "panic", "aborts"}

// DefaultKeywords are the words recognized as a disclosure outside of a heading.
var DefaultKeywords = []string{"panic", "abort", "fatal"}

// Checker checks documentation text for a disclosure marker.
type Checker struct {
	headings []string
	keywords []string
}

// New creates a [Checker] recognizing the default vocabulary plus the given
// extra headings and keywords. Matching is case-insensitive.
func New(headings, keywords []string) Checker {
	return Checker{
		headings: vocabulary(DefaultHeadings, headings),
		keywords: vocabulary(DefaultKeywords, keywords),
	}
}

func vocabulary(defaults, extra []string) []string {
	words := make([]string, 0, len(defaults)+len(extra))
	for _, w := range slices.Concat(defaults, extra) {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			words = append(words, w)
		}
	}

	slices.Sort(words)

	return slices.Compact(words)
}

// DocumentsPanics reports whether doc discloses that the item can panic.
func (c Checker) DocumentsPanics(doc string) bool {
	if strings.TrimSpace(doc) == "" {
		return false
	}

	if c.hasHeading(doc) {
		return true
	}

	text := strings.ToLower(doc)

	return slices.ContainsFunc(c.keywords, func(k string) bool { return strings.Contains(text, k) })
}

// hasHeading looks for a section heading line, "# Panics" (Markdown and Go doc
// comments) or a "Panics:" label.
func (c Checker) hasHeading(doc string) bool {
	for line := range strings.Lines(doc) {
		line = strings.TrimSpace(line)

		var title string
		switch {
		case strings.HasPrefix(line, "#"):
			title = strings.TrimLeft(line, "#")
			if len(line)-len(title) > 6 || title == "" || (title[0] != ' ' && title[0] != '\t') {
				continue // not a heading
			}

		case strings.HasSuffix(line, ":"):
			title = strings.TrimSuffix(line, ":")

		default:
			continue
		}

		title = strings.ToLower(strings.TrimSpace(title))
		if _, found := slices.BinarySearch(c.headings, title); found {
			return true
		}
	}

	return false
}
