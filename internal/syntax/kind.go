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

package syntax

//go:generate go tool stringer -type Kind

// Kind is the tag of a [Node].
type Kind uint8

const (
	// Other is any construct without special meaning.
	Other Kind = iota

	// File is the root of a source file. Its visibility is the visibility of the
	// module the file implements.
	File

	// Module is a nested module scope. An [External] module has no children, its
	// items live in another file.
	Module

	// TypeScope is a type-level scope holding methods (impl block, trait, receiver type).
	TypeScope

	// Func is a function or method declaration.
	Func

	// Closure is an anonymous function.
	Closure

	// Block is a statement block.
	Block

	// Call is a function call, Text holds the callee.
	Call

	// MethodCall is a method call, Text holds the method name.
	MethodCall

	// MacroCall is a macro invocation, Text holds the macro name without the bang.
	MacroCall

	// TypeAssert is a type assertion.
	TypeAssert

	// Index is an index expression.
	Index

	// Slice is a slice expression.
	Slice

	// Binary is a binary expression, Text holds the operator.
	Binary

	// AssignOp is a compound assignment, Text holds the operator without "=".
	AssignOp
)

// Scope reports whether nodes of this kind open a visibility scope.
func (k Kind) Scope() bool {
	switch k {
	case File, Module, TypeScope, Func:
		return true

	default:
		return false
	}
}
