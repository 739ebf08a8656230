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

package panicsite

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names is a set of identifiers.
type Names map[string]struct{}

// NewNames creates a [Names] set.
func NewNames(names ...string) Names {
	s := make(Names, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Has reports whether name is in the set.
func (s Names) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// Vocabulary is the language-specific knowledge of the predicate.
type Vocabulary struct {
	// AbortCalls are callees that never return normally.
	AbortCalls Names

	// MustPrefixes are callee name prefixes of helpers that panic on error, like regexp.MustCompile.
	MustPrefixes []string

	// UnwrapMethods are methods that panic on an empty or error value.
	UnwrapMethods Names

	// AbortMacros, AssertMacros and UnreachableMacros classify macro invocations.
	AbortMacros       Names
	AssertMacros      Names
	UnreachableMacros Names

	// DivisionOps are integer operators that always trap on an invalid right operand,
	// a zero divisor or, for Go shifts, a negative count.
	DivisionOps Names

	// OverflowOps are integer operators that trap on overflow when overflow checks are enabled.
	OverflowOps Names
}

// mustCall reports whether the base name of callee starts with one of the must prefixes,
// followed by an upper case letter or nothing.
func (v *Vocabulary) mustCall(callee string) bool {
	base := callee[strings.LastIndexAny(callee, ".:")+1:]
	for _, prefix := range v.MustPrefixes {
		rest, ok := strings.CutPrefix(base, prefix)
		if !ok {
			continue
		}

		if r, _ := utf8.DecodeRuneInString(rest); rest == "" || unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

// Go is the vocabulary for Go sources. Call names are formatted like
// "log.Fatal" and "(log.Logger).Fatal".
var Go = &Vocabulary{
	AbortCalls: NewNames(
		"panic",

		"log.Fatal", "log.Fatalf", "log.Fatalln",
		"log.Panic", "log.Panicf", "log.Panicln",
		"(log.Logger).Fatal", "(log.Logger).Fatalf", "(log.Logger).Fatalln",
		"(log.Logger).Panic", "(log.Logger).Panicf", "(log.Logger).Panicln",

		"os.Exit", "syscall.Exit", "runtime.Goexit",

		"(testing.common).Fatal", "(testing.common).Fatalf", "(testing.common).FailNow",
		"(testing.TB).Fatal", "(testing.TB).Fatalf", "(testing.TB).FailNow",

		"(github.com/sirupsen/logrus.Entry).Fatal", "(github.com/sirupsen/logrus.Entry).Fatalf",
		"(github.com/sirupsen/logrus.Entry).Panic", "(github.com/sirupsen/logrus.Entry).Panicf",
		"(github.com/sirupsen/logrus.Entry).Panicln",
		"(github.com/sirupsen/logrus.Logger).Exit",
		"(github.com/sirupsen/logrus.Logger).Fatal", "(github.com/sirupsen/logrus.Logger).Fatalf",
		"(github.com/sirupsen/logrus.Logger).Panic", "(github.com/sirupsen/logrus.Logger).Panicf",
		"(github.com/sirupsen/logrus.Logger).Panicln",
		"github.com/sirupsen/logrus.Fatal", "github.com/sirupsen/logrus.Fatalf",
		"github.com/sirupsen/logrus.Panic", "github.com/sirupsen/logrus.Panicf",

		"(go.uber.org/zap.Logger).Fatal", "(go.uber.org/zap.Logger).Panic",
		"(go.uber.org/zap.SugaredLogger).Fatal", "(go.uber.org/zap.SugaredLogger).Fatalf",
		"(go.uber.org/zap.SugaredLogger).Fatalln", "(go.uber.org/zap.SugaredLogger).Fatalw",
		"(go.uber.org/zap.SugaredLogger).Panic", "(go.uber.org/zap.SugaredLogger).Panicf",
		"(go.uber.org/zap.SugaredLogger).Panicln", "(go.uber.org/zap.SugaredLogger).Panicw",

		"k8s.io/klog.Exit", "k8s.io/klog.ExitDepth", "k8s.io/klog.Exitf", "k8s.io/klog.Exitln",
		"k8s.io/klog.Fatal", "k8s.io/klog.FatalDepth", "k8s.io/klog.Fatalf", "k8s.io/klog.Fatalln",
		"k8s.io/klog/v2.Exit", "k8s.io/klog/v2.ExitDepth", "k8s.io/klog/v2.Exitf", "k8s.io/klog/v2.Exitln",
		"k8s.io/klog/v2.Fatal", "k8s.io/klog/v2.FatalDepth", "k8s.io/klog/v2.Fatalf", "k8s.io/klog/v2.Fatalln",
	),
	MustPrefixes:      []string{"Must"},
	UnwrapMethods:     NewNames(),
	AbortMacros:       NewNames(),
	AssertMacros:      NewNames(),
	UnreachableMacros: NewNames(),
	DivisionOps:       NewNames("/", "%", "<<", ">>"),
	OverflowOps:       NewNames(), // Go integers wrap around
}

// Rust is the vocabulary for Rust sources. Call names are paths as written.
var Rust = &Vocabulary{
	AbortCalls: NewNames(
		"std::process::exit", "process::exit", "::std::process::exit",
		"std::process::abort", "process::abort", "::std::process::abort",
		"std::panic::panic_any", "panic::panic_any", "panic_any",
		"std::panic::resume_unwind", "panic::resume_unwind", "resume_unwind",
	),
	UnwrapMethods: NewNames("unwrap", "expect", "unwrap_err", "expect_err"),
	AbortMacros:   NewNames("panic", "todo", "unimplemented"),
	AssertMacros:  NewNames("assert", "assert_eq", "assert_ne"),
	UnreachableMacros: NewNames(
		"unreachable",
	),
	DivisionOps: NewNames("/", "%"),
	OverflowOps: NewNames("+", "-", "*", "<<", ">>"),
}
