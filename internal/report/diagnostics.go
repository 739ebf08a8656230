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

// Package report turns walker findings into user facing output: go/analysis
// diagnostics for the Go analyzer and grouped text for the command line.
package report

import (
	"context"
	"fmt"
	"runtime/trace"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/panicdoc/internal/astutil"
	"fillmore-labs.com/panicdoc/internal/panicsite"
	"fillmore-labs.com/panicdoc/internal/walker"
)

// Category is the diagnostic category of undocumented panics.
const Category = "undocumented-panic"

// ProcessDiagnostics reports the findings of one file to the pass.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []walker.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		p.Report(Diagnostic(currentFile, f))
	}
}

// Diagnostic converts a finding in currentFile into an [analysis.Diagnostic].
// The diagnostic covers the declaration, every site is attached as related information.
func Diagnostic(currentFile astutil.CurrentFile, f walker.Finding) analysis.Diagnostic {
	related := make([]analysis.RelatedInformation, 0, len(f.Sites))
	for _, site := range f.Sites {
		related = append(related, analysis.RelatedInformation{
			Pos:     currentFile.Pos(site.Span.Start.Offset),
			End:     currentFile.Pos(site.Span.End.Offset),
			Message: "Possible " + site.Kind.String(),
		})
	}

	return analysis.Diagnostic{
		Pos:      currentFile.Pos(f.Span.Start.Offset),
		End:      currentFile.Pos(f.Span.End.Offset),
		Category: Category,
		Message:  Message(f),
		Related:  related,
	}
}

// Message summarizes a finding like "F may panic (explicit abort) but does not document it".
func Message(f walker.Finding) string {
	return fmt.Sprintf("%s may panic (%s) but does not document it", f.Name, Kinds(f.Sites))
}

// Kinds returns the distinct site kinds in order of first appearance.
func Kinds(sites []panicsite.Site) string {
	kinds := lo.Uniq(lo.Map(sites, func(s panicsite.Site, _ int) panicsite.Kind { return s.Kind }))

	return strings.Join(lo.Map(kinds, func(k panicsite.Kind, _ int) string { return k.String() }), ", ")
}
