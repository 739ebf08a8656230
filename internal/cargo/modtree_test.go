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

package cargo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/panicdoc/internal/cargo"
	"fillmore-labs.com/panicdoc/internal/syntax"
)

func external(name string, vis syntax.Visibility) *syntax.Node {
	return &syntax.Node{Kind: syntax.Module, Name: name, Vis: vis, Attr: syntax.External}
}

func file(children ...*syntax.Node) *syntax.Node {
	return &syntax.Node{Kind: syntax.File, Children: children}
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	tree := file(
		external("net", syntax.Public),
		external("util", syntax.Private),
		&syntax.Node{Kind: syntax.Module, Name: "inner", Vis: syntax.Public, Children: []*syntax.Node{
			external("inner::io", syntax.Public),
		}},
		&syntax.Node{Kind: syntax.Module, Name: "hidden", Children: []*syntax.Node{
			external("hidden::io", syntax.Public),
		}},
		&syntax.Node{Kind: syntax.Func, Name: "f"},
	)

	got := Declarations(tree)

	assert.Equal(t, []Declaration{
		{Segments: []string{"net"}, Visible: true},
		{Segments: []string{"util"}, Visible: false},
		{Segments: []string{"inner", "io"}, Visible: true},
		{Segments: []string{"hidden", "io"}, Visible: false},
	}, got)

	assert.Nil(t, Declarations(nil))
}

func TestResolveModules(t *testing.T) {
	t.Parallel()

	crate := Crate{Name: "demo", Lib: "src/lib.rs", Bins: []string{"src/main.rs"}}

	files := []string{
		"src/cli.rs",
		"src/lib.rs",
		"src/main.rs",
		"src/net/mod.rs",
		"src/net/tcp.rs",
		"src/net/udp.rs",
		"src/stray/thing.rs",
		"src/util.rs",
	}

	trees := []*syntax.Node{
		file(),
		file(external("net", syntax.Public), external("util", syntax.Private)),
		file(external("cli", syntax.Private), external("util", syntax.Public)),
		file(external("tcp", syntax.Public), external("udp", syntax.Restricted)),
		file(),
		file(),
		file(),
		nil,
	}

	got := ResolveModules(crate, files, trees)

	want := []Module{
		{Path: []string{"cli"}, Vis: syntax.Private},
		{Vis: syntax.Implicit},
		{Vis: syntax.Private},
		{Path: []string{"net"}, Vis: syntax.Implicit},
		{Path: []string{"net", "tcp"}, Vis: syntax.Implicit},
		{Path: []string{"net", "udp"}, Vis: syntax.Private},
		{Path: []string{"stray", "thing"}, Vis: syntax.Implicit, Orphan: true},
		{Path: []string{"util"}, Vis: syntax.Private},
	}

	assert.Equal(t, want, got)
}

func TestChildDirectories(t *testing.T) {
	t.Parallel()

	crate := Crate{Lib: "lib.rs"}
	files := []string{"a.rs", "a/b.rs", "lib.rs"}
	trees := []*syntax.Node{
		file(external("b", syntax.Public)),
		file(),
		file(external("a", syntax.Public)),
	}

	got := ResolveModules(crate, files, trees)

	assert.Equal(t, []string{"a", "b"}, got[1].Path)
	assert.False(t, got[1].Orphan)
}

func TestQualify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "parse", Module{}.Qualify("parse"))
	assert.Equal(t, "net::tcp::Conn::read", Module{Path: []string{"net", "tcp"}}.Qualify("Conn::read"))
}
