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

// Package generation is the text-generation namespace: configuration,
// streamers, and the backend-specific logits processors, stopping criteria,
// beam search and generation mixins for the torch, tf and flax backends.
//
// Symbols from groups whose backend is unavailable are silently absent:
//
//	ns, err := generation.New(config.DefaultConfig(), oracle.Static(map[apis.Backend]bool{
//	    generation.Torch: true,
//	    generation.TF:    false,
//	    generation.Flax:  false,
//	}))
//	ns.Has("TopKLogitsWarper")   // true
//	ns.Has("TFTopKLogitsWarper") // false
//
// Importing this package registers a loader for every submodule with the
// process-wide importer.
package generation
