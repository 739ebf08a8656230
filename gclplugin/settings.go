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

package gclplugin

import panicdoc "fillmore-labs.com/panicdoc/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Internal treats internal packages as public API.
	Internal *bool `json:"internal,omitzero"`
	// Keywords are additional words disclosing panics anywhere in the documentation.
	Keywords []string `json:"keywords,omitzero"`
	// Headings are additional section headings disclosing panics.
	Headings []string `json:"headings,omitzero"`
}

// Options converts [Settings] into a list of [panicdoc.Option] for the panicdoc analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []panicdoc.Option {
	var opts []panicdoc.Option

	opts = appendOption(opts, s.Internal, panicdoc.WithInternal)
	opts = appendList(opts, s.Keywords, panicdoc.WithKeywords)
	opts = appendList(opts, s.Headings, panicdoc.WithHeadings)

	return opts
}

// appendOption appends a non-nil setting to a [panicdoc.Option] list.
func appendOption[T any](opts []panicdoc.Option, value *T, constructor func(T) panicdoc.Option) []panicdoc.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendList appends a non-empty list setting to a [panicdoc.Option] list.
func appendList[T any](opts []panicdoc.Option, values []T, constructor func(...T) panicdoc.Option) []panicdoc.Option {
	if len(values) == 0 {
		return opts
	}

	return append(opts, constructor(values...))
}
