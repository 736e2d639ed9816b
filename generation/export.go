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

package generation

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/nsx/apis"
)

// Kind tells whether an export is a type or a function.
type Kind uint8

const (
	// KindType is an exported type, such as a processor or output class.
	KindType Kind = iota
	// KindFunc is an exported helper function.
	KindFunc
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindFunc:
		return "func"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Export is the value a generation submodule binds for each of its symbols.
type Export struct {
	Name      string       `json:"name" yaml:"name"`
	Submodule string       `json:"submodule" yaml:"submodule"`
	Backend   apis.Backend `json:"backend,omitempty" yaml:"backend,omitempty"`
	Kind      Kind         `json:"kind" yaml:"kind"`
}

// String renders the export as "submodule.Name".
func (e *Export) String() string {
	return e.Submodule + "." + e.Name
}

// kindOf classifies a symbol by the case of its first letter.
func kindOf(symbol string) Kind {
	r, _ := utf8.DecodeRuneInString(symbol)
	if unicode.IsLower(r) {
		return KindFunc
	}
	return KindType
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
