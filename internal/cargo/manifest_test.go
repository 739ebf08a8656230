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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/panicdoc/internal/cargo"
)

// writeTree creates files below a temporary directory and returns it.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	return dir
}

const manifest = `[package]
name = "demo"
version = "0.1.0"

[profile.dev]
overflow-checks = false

[profile.release]
overflow-checks = true

[profile.dist]
inherits = "release"

[profile.loop-a]
inherits = "loop-b"

[profile.loop-b]
inherits = "loop-a"
`

func TestOverflowChecks(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"Cargo.toml": manifest})

	m, err := LoadManifest(filepath.Join(dir, ManifestName))
	require.NoError(t, err)

	tests := [...]struct {
		profile string
		want    bool
		wantErr bool
	}{
		{profile: "dev", want: false},
		{profile: "test", want: false},
		{profile: "release", want: true},
		{profile: "bench", want: true},
		{profile: "dist", want: true},
		{profile: "loop-a", wantErr: true},
		{profile: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Parallel()

			got, err := m.OverflowChecks(tt.profile)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultProfiles(t *testing.T) {
	t.Parallel()

	var m Manifest

	dev, err := m.OverflowChecks("dev")
	require.NoError(t, err)
	assert.True(t, dev)

	release, err := m.OverflowChecks("release")
	require.NoError(t, err)
	assert.False(t, release)

	_, err = m.OverflowChecks("custom")
	require.ErrorIs(t, err, ErrUnknownProfile)
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"Cargo.toml": "[package\nname = ",
		"ws/Cargo.toml": `[workspace]
members = ["crates/*"]
exclude = ["crates/skip"]
`,
		"ws/crates/a/Cargo.toml":    "[package]\nname = \"a\"\n",
		"ws/crates/a/src/lib.rs":    "",
		"ws/crates/b/Cargo.toml":    "[package]\nname = \"b\"\n\n[[bin]]\nname = \"tool\"\npath = \"tool.rs\"\n",
		"ws/crates/b/src/main.rs":   "",
		"ws/crates/b/src/bin/x.rs":  "",
		"ws/crates/skip/Cargo.toml": "[package]\nname = \"skip\"\n",
		"ws/crates/notes.txt":       "",
	})

	_, err := LoadManifest(filepath.Join(dir, ManifestName))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoManifest)

	_, err = LoadManifest(filepath.Join(dir, "missing", ManifestName))
	require.ErrorIs(t, err, ErrNoManifest)

	path := filepath.Join(dir, "ws", ManifestName)
	m, err := LoadManifest(path)
	require.NoError(t, err)

	crates, err := Crates(path, m)
	require.NoError(t, err)
	require.Len(t, crates, 2)

	assert.Equal(t, "a", crates[0].Name)
	assert.Equal(t, "src/lib.rs", crates[0].Lib)
	assert.Empty(t, crates[0].Bins)

	assert.Equal(t, "b", crates[1].Name)
	assert.Empty(t, crates[1].Lib)
	assert.Equal(t, []string{"src/bin/x.rs", "src/main.rs", "tool.rs"}, crates[1].Bins)
}

func TestFindManifest(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"Cargo.toml":     "[package]\nname = \"demo\"\n",
		"src/net/tcp.rs": "",
	})

	got, err := FindManifest(filepath.Join(dir, "src", "net"))
	require.NoError(t, err)

	want, err := filepath.Abs(filepath.Join(dir, ManifestName))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
