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

// Builder composes a Table and a Namespace from a Config.
// Implementations may migrate state from a previous Namespace, or ignore it.
type Builder interface {
	// BuildTable constructs the export table for decl, consulting oracle once
	// per distinct backend. Rebuilding always reconsults the oracle.
	BuildTable(cfg Config, decl Declaration, oracle Oracle) (Table, error)
	// BuildNamespace constructs a Namespace over table. prev, when non-nil,
	// may donate already-imported submodule handles.
	BuildNamespace(cfg Config, name string, table Table, imp Importer, prev Namespace) (Namespace, error)
}
