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


package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fillmore-labs.com/panicdoc/internal/cargo"
)

// ConfigName is the configuration file looked for next to the manifest.
const ConfigName = "panicdoc.toml"

// settings are the resolved command line, environment and file settings.
type settings struct {
	ManifestPath string
	Color        ColorMode
	Profile      string
	Excludes     []string
	LogLevel     slog.Level
	Headings     []string
	Keywords     []string
	Jobs         int
}

// newViper creates a configuration bound to flags and the PANICDOC_ environment.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix("PANICDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("doc.headings", []string{})
	v.SetDefault("doc.keywords", []string{})

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	return v, nil
}

// load resolves the manifest, reads the configuration file and decodes all settings.
func load(v *viper.Viper) (settings, error) {
	manifest, err := manifestPath(v.GetString("manifest-path"))
	if err != nil {
		return settings{}, err
	}

	if err := readConfig(v, manifest); err != nil {
		return settings{}, err
	}

	s := settings{
		ManifestPath: manifest,
		Profile:      v.GetString("profile"),
		Excludes:     v.GetStringSlice("exclude"),
		Headings:     v.GetStringSlice("doc.headings"),
		Keywords:     v.GetStringSlice("doc.keywords"),
		Jobs:         v.GetInt("jobs"),
	}

	if err := s.Color.UnmarshalText([]byte(v.GetString("color"))); err != nil {
		return settings{}, err
	}

	if err := s.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return settings{}, fmt.Errorf("invalid log level: %w", err)
	}

	return s, nil
}

// manifestPath returns the absolute manifest path, searching from the working directory when empty.
func manifestPath(path string) (string, error) {
	if path == "" {
		return cargo.FindManifest(".")
	}

	if filepath.Base(path) != cargo.ManifestName {
		return "", fmt.Errorf("the manifest-path must be a path to a %s file", cargo.ManifestName)
	}

	return filepath.Abs(path)
}

// readConfig merges the explicit configuration file or, absent one, [ConfigName] next to the manifest.
func readConfig(v *viper.Viper, manifest string) error {
	file := v.GetString("config")
	if file == "" {
		file = filepath.Join(filepath.Dir(manifest), ConfigName)
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}

	v.SetConfigFile(file)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading configuration %s: %w", file, err)
	}

	return nil
}

// LogValue implements [slog.LogValuer].
func (s settings) LogValue() slog.Value {
	color, _ := s.Color.MarshalText()

	return slog.GroupValue(
		slog.String("manifest", s.ManifestPath),
		slog.String("color", string(color)),
		slog.String("profile", s.Profile),
		slog.Any("exclude", s.Excludes),
		slog.Any("headings", s.Headings),
		slog.Any("keywords", s.Keywords),
	)
}
