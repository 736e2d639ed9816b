/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"fmt"
	"strings"
)

// Mode controls when submodules are imported.
//
// # Values
//
//   - ModeLazy: import a submodule the first time one of its symbols is
//     requested (the default).
//   - ModeEager: import every available submodule while the namespace is
//     constructed, failing construction if any name cannot be resolved.
//
// Mode values are plain integers and safe to share across goroutines.
type Mode int

const (
	// ModeLazy defers every import until first access.
	ModeLazy Mode = iota
	// ModeEager resolves every exported symbol at construction time.
	ModeEager
)

// String returns "lazy", "eager", or "Unknown(<n>)" for out-of-range values.
// It never panics so corrupted values can still be logged.
func (m Mode) String() string {
	switch m {
	case ModeLazy:
		return "lazy"
	case ModeEager:
		return "eager"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMode parses a textual Mode, case-insensitively and ignoring
// surrounding whitespace. On failure it returns ModeLazy and a non-nil error.
func ParseMode(s string) (Mode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ModeLazy, fmt.Errorf("mode: empty value")
	}
	switch strings.ToLower(trimmed) {
	case "lazy":
		return ModeLazy, nil
	case "eager":
		return ModeEager, nil
	default:
		return ModeLazy, fmt.Errorf("mode: unknown value %q", s)
	}
}

// MustParseMode is like ParseMode but panics on invalid input.
// Use it only for hard-coded values.
func MustParseMode(s string) Mode {
	m, err := ParseMode(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText encodes the Mode using its String form.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeLazy && m != ModeEager {
		return nil, fmt.Errorf("mode: cannot marshal %s", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a Mode previously produced by MarshalText.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
