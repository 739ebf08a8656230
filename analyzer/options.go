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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/panicdoc/internal/config"
	"fillmore-labs.com/panicdoc/internal/run"
)

// Option configures specific behavior of a [New] panicdoc analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithInternal is an [Option] to treat internal packages as public API.
func WithInternal(internal bool) Option { return internalOption{internal: internal} }

type internalOption struct{ internal bool }

func (o internalOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeInternal, o.internal)
}

func (o internalOption) LogAttr() slog.Attr {
	return slog.Bool("internal", o.internal)
}

// WithKeywords is an [Option] to add words that disclose panics anywhere in the documentation.
func WithKeywords(keywords ...string) Option { return keywordsOption{keywords: keywords} }

type keywordsOption struct{ keywords []string }

func (o keywordsOption) apply(r *run.Options) {
	r.Keywords = append(slices.Clip(r.Keywords), o.keywords...)
}

func (o keywordsOption) LogAttr() slog.Attr {
	return slog.Any("keywords", o.keywords)
}

// WithHeadings is an [Option] to add section headings that disclose panics.
func WithHeadings(headings ...string) Option { return headingsOption{headings: headings} }

type headingsOption struct{ headings []string }

func (o headingsOption) apply(r *run.Options) {
	r.Headings = append(slices.Clip(r.Headings), o.headings...)
}

func (o headingsOption) LogAttr() slog.Attr {
	return slog.Any("headings", o.headings)
}
