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

// NewModuleStrategy creates an apis.Strategy for handles implementing apis.Module.
func NewModuleStrategy() apis.Strategy {
	return &moduleStrategy{}
}

// moduleStrategy is the zero-reflection fast path: if the handle knows its own
// bindings, ask it and stop the chain on a hit.
type moduleStrategy struct{}

// Ensure moduleStrategy implements apis.Strategy.
var _ apis.Strategy = (*moduleStrategy)(nil)

// TryExtract calls handle.Lookup when handle implements apis.Module.
func (*moduleStrategy) TryExtract(handle any, symbol string, _ apis.Config) (any, bool) {
	if handle == nil {
		return nil, false
	}
	if m, ok := handle.(apis.Module); ok {
		return m.Lookup(symbol)
	}
	return nil, false
}
