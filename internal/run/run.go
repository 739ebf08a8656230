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

// Package run implements the panicdoc analysis pass over Go packages.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/panicdoc/internal/astutil"
	"fillmore-labs.com/panicdoc/internal/config"
	"fillmore-labs.com/panicdoc/internal/doccheck"
	"fillmore-labs.com/panicdoc/internal/frontend/goast"
	"fillmore-labs.com/panicdoc/internal/panicsite"
	"fillmore-labs.com/panicdoc/internal/report"
	"fillmore-labs.com/panicdoc/internal/walker"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the panicdoc analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("panicdoc: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "PanicDoc")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	w := walker.Walker{
		Predicate: panicsite.Predicate{Vocabulary: panicsite.Go},
		Docs:      doccheck.New(r.Headings, r.Keywords),
	}

	includeInternal := r.Behavior.Enabled(config.IncludeInternal)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		// Stage 1: Translate the file, leaving out suppressed declarations
		b := goast.Builder{Info: p.TypesInfo, Skip: currentFile.NoLint}
		vis := goast.FileVisibility(p.Pkg, currentFile.Name(), includeInternal)

		region := trace.StartRegion(ctx, "Translate")
		tree := b.File(currentFile.Handle(), f, vis)
		region.End()

		if tree == nil {
			astutil.InternalError(p, file, "Can't translate file %s", currentFile.Name())

			continue
		}

		// Stage 2: Find public declarations with undocumented panic sites
		region = trace.StartRegion(ctx, "Walk")
		findings := w.Walk(tree, currentFile.Name())
		region.End()

		// Stage 3: Generate diagnostics
		report.ProcessDiagnostics(ctx, p, currentFile, findings)
	}

	return nil, nil
}
