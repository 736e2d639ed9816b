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

// Package strategy provides the built-in ways of pulling a symbol out of a
// loaded submodule handle.
//
// The default chain, assembled by the builder, is:
//
//  1. Module:   the handle implements apis.Module and answers Lookup itself.
//  2. Bindings: the handle is a map[string]any or a strategy.Bindings.
//  3. Reflect:  the handle is a struct (or pointer chain to one) and the
//     symbol names an exported field or method.
//
// A miss from every strategy means the submodule does not bind the symbol it
// declared, which the namespace reports as an export consistency error.
package strategy
