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
	uref "dirpx.dev/nsx/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that extracts exported struct
// fields and methods via reflection.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback for struct-shaped handles. It
// unwraps pointers/interfaces via utils/reflect.Normalize and binds methods
// to the handle. Results are cached by the namespace, so no memoization is
// kept here.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// TryExtract looks up symbol as an exported method or field of handle.
func (reflectStrategy) TryExtract(handle any, symbol string, cfg apis.Config) (any, bool) {
	return uref.Member(handle, symbol, cfg)
}

// Enumerate lists the symbols a handle binds, for handles whose shape one of
// the built-in strategies understands. The boolean is false when the handle
// cannot be enumerated.
func Enumerate(handle any, cfg apis.Config) ([]string, bool) {
	switch h := handle.(type) {
	case nil:
		return nil, false
	case apis.Enumerable:
		return h.Symbols(), true
	case map[string]any:
		out := make([]string, 0, len(h))
		for k := range h {
			out = append(out, k)
		}
		return out, true
	case apis.Module:
		return nil, false
	}
	members := uref.Members(handle, cfg)
	return members, members != nil
}
