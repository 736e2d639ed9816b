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

// Loader constructs a submodule handle. It is the expensive step that may
// bring up a whole backend runtime and runs at most once per submodule per
// successful import.
type Loader func() (any, error)

// Importer turns a submodule name into a loaded handle.
type Importer interface {
	// Import loads the submodule. Implementations must not cache failures.
	Import(submodule string) (any, error)
}

// ImporterFunc adapts a plain function to the Importer interface.
type ImporterFunc func(submodule string) (any, error)

// Import implements Importer.
func (f ImporterFunc) Import(submodule string) (any, error) {
	return f(submodule)
}

// Module is a loaded submodule handle that knows its own bindings.
type Module interface {
	// Lookup returns the value bound to symbol.
	Lookup(symbol string) (any, bool)
}

// Enumerable is implemented by handles that can list their bindings.
// The eager verification path uses it to detect undeclared exports.
type Enumerable interface {
	Symbols() []string
}
