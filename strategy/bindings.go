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

package strategy

import (
	"dirpx.dev/nsx/apis"
)

// NewBindingsStrategy creates an apis.Strategy for map-shaped handles.
func NewBindingsStrategy() apis.Strategy {
	return &bindingsStrategy{}
}

// bindingsStrategy handles map[string]any and Bindings handles.
type bindingsStrategy struct{}

// Ensure bindingsStrategy implements apis.Strategy.
var _ apis.Strategy = (*bindingsStrategy)(nil)

// TryExtract indexes the map. A key present with a nil value counts as bound.
func (*bindingsStrategy) TryExtract(handle any, symbol string, _ apis.Config) (any, bool) {
	switch m := handle.(type) {
	case map[string]any:
		v, ok := m[symbol]
		return v, ok
	case Bindings:
		v, ok := m[symbol]
		return v, ok
	default:
		return nil, false
	}
}

// Bindings is a ready-made submodule handle: a plain symbol table that also
// satisfies apis.Module and apis.Enumerable.
type Bindings map[string]any

// Lookup implements apis.Module.
func (b Bindings) Lookup(symbol string) (any, bool) {
	v, ok := b[symbol]
	return v, ok
}

// Symbols implements apis.Enumerable.
func (b Bindings) Symbols() []string {
	out := make([]string, 0, len(b))
	for k := range b {
		out = append(out, k)
	}
	return out
}

var (
	_ apis.Module     = Bindings(nil)
	_ apis.Enumerable = Bindings(nil)
)
