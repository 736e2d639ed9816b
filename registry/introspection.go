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

package registry

import (
	"github.com/aretw0/introspection"
)

// TableState exposes the export table for observability.
type TableState struct {
	Symbols           int             `json:"symbols"`
	Submodules        []string        `json:"submodules"`
	OmittedSubmodules int             `json:"omitted_submodules"`
	Backends          map[string]bool `json:"backends"`
}

// State implements introspection.Introspectable.
func (t *Table) State() any {
	backends := make(map[string]bool, len(t.avail))
	for b, v := range t.avail {
		backends[string(b)] = v
	}
	return TableState{
		Symbols:           len(t.names),
		Submodules:        t.Submodules(),
		OmittedSubmodules: t.nomitted,
		Backends:          backends,
	}
}

// ComponentType implements introspection.Component.
func (t *Table) ComponentType() string {
	return "export_table"
}

var _ introspection.Introspectable = (*Table)(nil)
var _ introspection.Component = (*Table)(nil)
