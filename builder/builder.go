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

package builder

import (
	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/namespace"
	"dirpx.dev/nsx/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// Ensure builder implements apis.Builder.
var _ apis.Builder = (*builder)(nil)

// BuildTable builds a fresh export table. The oracle is always reconsulted,
// so a rebuild observes availability changes.
func (b *builder) BuildTable(cfg apis.Config, decl apis.Declaration, oracle apis.Oracle) (apis.Table, error) {
	t, err := registry.Build(cfg, decl, oracle)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// BuildNamespace builds a namespace over table. If prev is non-nil, its
// imported submodule handles are adopted for submodules that still exist.
func (b *builder) BuildNamespace(cfg apis.Config, name string, table apis.Table, imp apis.Importer, prev apis.Namespace) (apis.Namespace, error) {
	ns, err := namespace.New(cfg, name, table, imp, namespace.WithPrevious(prev))
	if err != nil {
		return nil, err
	}
	return ns, nil
}
