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

// Package a exercises the default configuration.
package a

import (
	"log"
	"os"
	"regexp"
	"strconv"
)

func Abort() { // want `^Abort may panic \(explicit abort\) but does not document it$`
	panic("boom")
}

// Documented has a dedicated section.
//
// # Panics
//
// Always.
func Documented() {
	panic("boom")
}

// Mentioned will panic when called.
func Mentioned() {
	panic("boom")
}

func Exit(code int) { // want `Exit may panic \(explicit abort\)`
	os.Exit(code)
}

// Logf logs.
func Logf(l *log.Logger) { // want `Logf may panic \(explicit abort\)`
	l.Fatalf("value %d", 1)
}

func private() {
	panic("boom")
}

func Shadowed(panic func(string)) {
	panic("not the builtin")
}

func Assert(v any) string { // want `Assert may panic \(forced unwrap\)`
	return v.(string)
}

func CommaOk(v any) string {
	s, _ := v.(string)

	switch v.(type) {
	case int:
		return "int"
	}

	return s
}

func Compile(s string) *regexp.Regexp { // want `Compile may panic \(forced unwrap\)`
	return regexp.MustCompile(s)
}

func Lookup(m map[string]int, k string) int {
	return m[k]
}

func Get[M ~map[string]V, V any](m M, k string) V {
	return m[k]
}

func First(a [4]int) int {
	return a[0]
}

func Nth(s []int, i int) int { // want `Nth may panic \(computed index\)`
	return s[i]
}

func Divide(a, b int) int { // want `Divide may panic \(trapping arithmetic\)`
	return a / b
}

func Scale(a *int, b int) { // want `Scale may panic \(trapping arithmetic\)`
	*a /= b
}

func Half(a int) int {
	return a / 2
}

func Shift(x, n int) int { // want `Shift may panic \(trapping arithmetic\)`
	return x << n
}

func ShiftUnsigned(x int, n uint) int {
	return x << n
}

func ParenCommaOk(v any) int {
	x, ok := (v.(int))
	if !ok {
		return 0
	}

	return x
}

func Ratio(a, b float64) float64 {
	return a / b
}

func Deferred() func() { // want `Deferred may panic \(explicit abort\)`
	return func() { panic("later") }
}

func Parse(s []string) int { // want `Parse may panic \(computed index, explicit abort\)`
	n, err := strconv.Atoi(s[0])
	if err != nil {
		panic(err)
	}

	return n
}

//nolint:panicdoc
func Suppressed() {
	panic("boom")
}

func Trailing() { //nolint:panicdoc
	panic("boom")
}
