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

// Package registry builds the export table: the flat, read-only mapping from
// exported symbol name to the submodule that owns it.
//
// A table is built from an apis.Declaration and an apis.Oracle:
//
//	tbl, err := registry.Build(cfg, decl, oracle)
//
// Groups tagged with a backend are included only when the oracle reports the
// backend available. Their symbols are still remembered as omitted so that
// diagnostics can explain why a name is missing without guessing.
package registry
