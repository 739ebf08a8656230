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

package goast

import (
	"go/types"
)

// FuncName identifies a function or method independent of its position.
type FuncName struct {
	Path     string // package path, empty for universe and interface methods
	Receiver string // receiver base type name, empty for functions
	Name     string
}

// String formats f like "log.Fatal" or "(log.Logger).Fatal".
func (f FuncName) String() string {
	switch {
	case f.Receiver == "" && f.Path == "":
		return f.Name

	case f.Receiver == "":
		return f.Path + "." + f.Name

	case f.Path == "":
		return "(" + f.Receiver + ")." + f.Name

	default:
		return "(" + f.Path + "." + f.Receiver + ")." + f.Name
	}
}

// FuncNameOf returns the [FuncName] of fun. Pointer receivers and aliases are
// resolved to the named base type.
func FuncNameOf(fun *types.Func) FuncName {
	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		var path string
		if pkg := fun.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Name: fun.Name()}
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch recv := recv.(type) {
	case *types.Named:
		obj := recv.Obj()

		var path string
		if pkg := obj.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}
