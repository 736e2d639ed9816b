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

// Package nsx provides a process-wide lazy namespace: a flat set of exported
// names whose values live in submodules that are only loaded when one of
// their names is first requested.
//
// A namespace aggregates many submodules, some of which depend on optional,
// heavy backends ("torch", "tf", "flax", a GPU driver, ...). Loading
// everything up front would be slow and would fail on machines where a
// backend is missing. nsx instead publishes the full set of available names
// immediately and defers the expensive part until it is needed:
//
//	decl := apis.Declaration{
//	    Name: "generation",
//	    Groups: []apis.Group{
//	        {Submodule: "configuration_utils", Symbols: []string{"GenerationConfig"}},
//	        {Submodule: "beam_search", Symbols: []string{"BeamScorer"}, Backend: "torch"},
//	    },
//	}
//	ns, err := nsx.Install(decl, oracle.Static(map[apis.Backend]bool{"torch": true}), nil)
//	...
//	v, err := nsx.Get("BeamScorer") // loads beam_search, nothing else
//
// # Design
//
// The core of nsx is a read-mostly global snapshot (state). The snapshot
// holds:
//
//   - Config: lazy or eager mode, suggestion count, reflection limits and
//     the logger.
//
//   - Declaration: the static list of (submodule, symbols, backend) groups.
//     This is the single source of truth shared by the lazy path and the
//     eager verification path (builder.Verify).
//
//   - Oracle: answers "is backend B available?". It is consulted once per
//     backend per build; groups whose backend is unavailable are omitted
//     from the table and never loaded.
//
//   - Importer: turns a submodule name into a loaded handle. Submodule
//     packages register loaders from init(), see package importer.
//
//   - Builder: a pluggable factory that composes the export table and the
//     namespace. The default builder migrates already imported handles from
//     the previous namespace on rebuild.
//
// All of these live inside a single immutable struct. The package holds an
// atomic pointer to the current state. Readers load that pointer and never
// mutate it. Writers build a brand-new state and atomically swap it in.
//
// # Global API
//
//  1. Read helpers:
//
//     Get(name string) (any, error)
//     Has(name string) bool
//     Names() []string
//     Submodules() []string
//     Namespace() apis.Namespace
//     Table() apis.Table
//
//     Has, Names and Submodules never load a submodule.
//
//  2. Mutation helpers:
//
//     Install(decl, oracle, importer)
//     SetConfig(cfg apis.Config)
//     SetOracle(o apis.Oracle)
//     SetImporter(imp apis.Importer)
//     SetBuilder(b apis.Builder)
//     Rebuild()
//     SetAll(...)
//
//     Each of these takes the build lock, rebuilds the table (reconsulting
//     the oracle) and the namespace, and publishes the result. If the
//     rebuild fails the error is returned and the previous snapshot stays
//     in place.
//
// # Concurrency model
//
// Reads are lock-free on the snapshot. Within a namespace, concurrent first
// accesses to names of the same submodule trigger a single import and all
// observe the same value; once resolved, a name is served from a cache with
// no synchronization beyond a map load.
//
// # Errors
//
// See package errors: UnknownSymbolError for names not in the table,
// BackendImportError when a loader fails (never cached, a later access
// retries), ExportConsistencyError when a loaded submodule does not bind a
// declared name.
package nsx
