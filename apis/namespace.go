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

// Namespace is the lazily resolved, flat view over an export table.
// Listing and membership never import anything.
type Namespace interface {
	// Get resolves name, importing its owning submodule on first use.
	Get(name string) (any, error)
	// Has reports whether name is exported.
	Has(name string) bool
	// Names lists exported names in declaration order.
	Names() []string
	// Submodules lists exported submodules in declaration order.
	Submodules() []string
}
