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

// Descriptor is the built, immutable view of a declared submodule.
type Descriptor struct {
	// Submodule is the unique submodule name.
	Submodule string
	// Symbols are the exported names in declaration order.
	Symbols []string
	// Backend is the required backend, or None.
	Backend Backend
}

// Table is the read-only export table produced by a Builder.
// Implementations must be safe for concurrent reads without locking.
type Table interface {
	// Lookup returns the descriptor owning symbol, if it is exported.
	Lookup(symbol string) (*Descriptor, bool)
	// Omitted returns the descriptor that declared symbol when its backend
	// was unavailable at build time.
	Omitted(symbol string) (*Descriptor, bool)
	// Descriptor returns an exported submodule by name.
	Descriptor(submodule string) (*Descriptor, bool)
	// Names returns every exported symbol in declaration order.
	Names() []string
	// Submodules returns every exported submodule in declaration order.
	Submodules() []string
	// Backends returns the availability snapshot taken at build time.
	Backends() map[Backend]bool
	// Count returns the number of exported symbols.
	Count() int
}
