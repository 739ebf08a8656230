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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ColorMode specifies when output is colored.
type ColorMode uint8

const (
	// ColorAuto colors output written to a terminal.
	ColorAuto ColorMode = iota

	// ColorAlways colors output unconditionally.
	ColorAlways

	// ColorNever disables colored output.
	ColorNever
)

// Enabled reports whether output should be colored.
func (o ColorMode) Enabled() bool {
	switch o {
	case ColorAlways:
		return true

	case ColorNever:
		return false

	default:
		return !color.NoColor
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (o ColorMode) MarshalText() ([]byte, error) {
	switch o {
	case ColorAuto:
		return []byte("auto"), nil

	case ColorAlways:
		return []byte("always"), nil

	case ColorNever:
		return []byte("never"), nil

	default:
		return nil, fmt.Errorf("unknown color mode %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *ColorMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "auto":
		*o = ColorAuto

	case "always", "true", "on":
		*o = ColorAlways

	case "never", "false", "off":
		*o = ColorNever

	default:
		return fmt.Errorf("unknown color mode %q", string(text))
	}

	return nil
}
