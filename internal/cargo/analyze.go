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

package cargo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/trace"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/panicdoc/internal/doccheck"
	"fillmore-labs.com/panicdoc/internal/frontend/rust"
	"fillmore-labs.com/panicdoc/internal/panicsite"
	"fillmore-labs.com/panicdoc/internal/syntax"
	"fillmore-labs.com/panicdoc/internal/walker"
)

// DefaultProfile is the build profile whose overflow checks apply by default.
const DefaultProfile = "release"

// Options configure an analysis run.
type Options struct {
	// Profile selects the build profile for overflow checks.
	Profile string

	// Excludes are glob patterns of files to skip.
	Excludes []string

	// Headings and Keywords extend the documentation vocabulary.
	Headings, Keywords []string

	// Jobs limits the number of files processed in parallel, GOMAXPROCS when zero.
	Jobs int

	// Logger receives progress messages, none when nil.
	Logger *slog.Logger
}

// Result is the outcome of an analysis run.
type Result struct {
	// Findings are ordered by file, then by position.
	Findings []walker.Finding

	// Files is the number of analyzed files.
	Files int

	// Skipped is the number of files skipped because of errors.
	Skipped int
}

// Analyze checks all crates of the manifest at manifestPath.
func Analyze(ctx context.Context, manifestPath string, opts Options) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "CargoPanicDoc")
	defer task.End()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	profile := lo.CoalesceOrEmpty(opts.Profile, DefaultProfile)

	overflow, err := m.OverflowChecks(profile)
	if err != nil {
		return nil, err
	}

	crates, err := Crates(manifestPath, m)
	if err != nil {
		return nil, err
	}

	if len(crates) == 0 {
		return nil, fmt.Errorf("%s: no packages found", manifestPath)
	}

	a := analysis{
		root:      filepath.Dir(manifestPath),
		discovery: NewDiscovery(opts.Excludes),
		walker: walker.Walker{
			Predicate: panicsite.Predicate{Vocabulary: panicsite.Rust, OverflowChecks: overflow},
			Docs:      doccheck.New(opts.Headings, opts.Keywords),
		},
		jobs:   lo.Ternary(opts.Jobs > 0, opts.Jobs, runtime.GOMAXPROCS(0)),
		logger: logger,
	}

	logger.Info("Analyzing", slog.String("manifest", manifestPath), slog.Int("crates", len(crates)),
		slog.String("profile", profile), slog.Bool("overflow-checks", overflow))

	result := &Result{}
	for _, c := range crates {
		if err := a.crate(ctx, c, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

type analysis struct {
	root      string
	discovery Discovery
	walker    walker.Walker
	jobs      int
	logger    *slog.Logger
}

// crate analyzes one crate and appends its findings to result.
func (a analysis) crate(ctx context.Context, c Crate, result *Result) error {
	defer trace.StartRegion(ctx, "Crate").End()

	files, err := a.discovery.Files(c.Dir)
	if err != nil {
		return fmt.Errorf("crate %s: %w", c.Name, err)
	}

	a.logger.Info("Checking crate", slog.String("name", c.Name), slog.String("dir", c.Dir), slog.Int("files", len(files)))

	trees, err := a.parse(ctx, c, files)
	if err != nil {
		return fmt.Errorf("crate %s: %w", c.Name, err)
	}

	modules := ResolveModules(c, files, trees)

	for i, f := range files {
		if trees[i] == nil {
			result.Skipped++

			continue
		}

		if modules[i].Orphan {
			a.logger.Debug("File not reached from a crate root", slog.String("file", f))
		}

		trees[i].Vis = modules[i].Vis
	}

	findings, err := a.walk(ctx, c, files, trees, modules)
	if err != nil {
		return fmt.Errorf("crate %s: %w", c.Name, err)
	}

	result.Files += len(files) - lo.Count(trees, nil)
	result.Findings = append(result.Findings, findings...)

	return nil
}

// parse parses files in parallel. Files with errors are logged and left nil.
func (a analysis) parse(ctx context.Context, c Crate, files []string) ([]*syntax.Node, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	trees := make([]*syntax.Node, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)

	for i, f := range files {
		g.Go(func() error {
			start := time.Now()

			src, err := os.ReadFile(filepath.Join(c.Dir, filepath.FromSlash(f)))
			if err != nil {
				a.logger.Warn("Skipping unreadable file", slog.String("file", f), slog.Any("error", err))

				return nil
			}

			p := rust.NewParser()
			defer p.Close()

			tree, err := p.Parse(ctx, src)
			switch {
			case errors.Is(err, rust.ErrNoCGO), errors.Is(err, context.Canceled):
				return err

			case err != nil:
				a.logger.Warn("Skipping file", slog.String("file", f), slog.Any("error", err))

				return nil
			}

			trees[i] = tree

			a.logger.Debug("Parsed", slog.String("file", f), slog.Duration("duration", time.Since(start)))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return trees, nil
}

// walk walks parsed files in parallel and merges the findings in file order.
func (a analysis) walk(ctx context.Context, c Crate, files []string, trees []*syntax.Node, modules []Module) ([]walker.Finding, error) {
	defer trace.StartRegion(ctx, "Walk").End()

	results := make([][]walker.Finding, len(files))

	var g errgroup.Group
	g.SetLimit(a.jobs)

	for i, f := range files {
		if trees[i] == nil {
			continue
		}

		g.Go(func() error {
			findings := a.walker.Walk(trees[i], a.display(c, f))
			for j := range findings {
				findings[j].Name = modules[i].Qualify(findings[j].Name)
			}

			results[i] = findings

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lo.Flatten(results), nil
}

// display returns the path of a file relative to the manifest directory.
func (a analysis) display(c Crate, file string) string {
	abs := filepath.Join(c.Dir, filepath.FromSlash(file))

	rel, err := filepath.Rel(a.root, abs)
	if err != nil {
		return abs
	}

	return filepath.ToSlash(rel)
}
