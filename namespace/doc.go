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

// Package namespace implements the lazy namespace: a flat view over an export
// table that resolves each symbol on first access and caches the result.
//
// # Resolution
//
// Get(name) runs, in order:
//
//  1. The symbol cache. A hit returns immediately and imports nothing.
//  2. The export table. An unknown name fails with an UnknownSymbolError that
//     names the symbol, the known submodules and close matches. It mentions an
//     unavailable backend only when the name really is declared behind one.
//  3. The submodule import. Each submodule is imported at most once per
//     successful import; concurrent first accesses share a single in-flight
//     import. Failures are returned as BackendImportError and never cached,
//     so a later call retries cleanly.
//  4. Extraction through the resolver chain. A declared symbol missing from the
//     imported handle is an ExportConsistencyError.
//  5. LoadOrStore into the symbol cache so racing callers converge on one value.
//
// Has, Names, Submodules and Match consult only the table and never import.
//
// # Eager mode
//
// With apis.ModeEager the constructor resolves every exported name and fails
// if any of them cannot be resolved. Tooling that needs every symbol bound up
// front uses this mode; it shares the declaration with the lazy path.
package namespace
