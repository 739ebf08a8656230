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


// Package cli implements the cargo-panicdoc command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/panicdoc/internal/cargo"
	"fillmore-labs.com/panicdoc/internal/report"
)

// ErrFindings is returned when undocumented panics were found.
var ErrFindings = errors.New("undocumented panics found")

// Exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

const name = "cargo-panicdoc"

// Command creates the root command writing its report to stdout and logs to stderr.
func Command(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: "Report public Rust functions that may panic without documenting it",
		Long: `Report public functions of a cargo package or workspace that contain
panic sites (unwrap, panic!, indexing, trapping arithmetic and more) but
whose documentation has no "# Panics" section or panic keyword.

Settings are read from flags, PANICDOC_* environment variables and an
optional ` + ConfigName + ` next to the manifest, in that order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.String("manifest-path", "", "path to "+cargo.ManifestName+", searched from the working directory by default")
	f.String("color", "auto", "coloring: auto, always, never")
	f.String("profile", cargo.DefaultProfile, "build profile selecting overflow checks")
	f.StringArray("exclude", nil, "glob of files to skip, may be repeated")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.String("config", "", "configuration file, "+ConfigName+" next to the manifest by default")
	f.IntP("jobs", "j", 0, "number of files processed in parallel")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}

		s, err := load(v)
		if err != nil {
			return err
		}

		return run(cmd.Context(), s, stdout, stderr)
	}

	return cmd
}

func run(ctx context.Context, s settings, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: s.LogLevel}))
	logger.Debug("Configuration", slog.Any("settings", s))

	result, err := cargo.Analyze(ctx, s.ManifestPath, cargo.Options{
		Profile:  s.Profile,
		Excludes: s.Excludes,
		Headings: s.Headings,
		Keywords: s.Keywords,
		Jobs:     s.Jobs,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	logger.Info("Finished", slog.Int("files", result.Files), slog.Int("skipped", result.Skipped),
		slog.Int("findings", len(result.Findings)))

	if err := (report.Text{Color: s.Color.Enabled()}).Render(stdout, result.Findings); err != nil {
		return err
	}

	if len(result.Findings) > 0 {
		return ErrFindings
	}

	return nil
}

// Execute runs the command with args and returns the exit code.
// A leading "panicdoc" argument, as passed by cargo, is dropped.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "panicdoc" {
		args = args[1:]
	}

	cmd := Command(stdout, stderr)
	cmd.SetArgs(append([]string{}, args...))

	switch err := cmd.ExecuteContext(ctx); {
	case err == nil:
		return ExitOK

	case errors.Is(err, ErrFindings):
		return ExitFindings

	default:
		fmt.Fprintf(stderr, "%s: %v\n", name, err)

		return ExitError
	}
}
