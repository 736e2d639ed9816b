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

package namespace

import (
	"github.com/aretw0/introspection"
)

// NamespaceState exposes the resolution cache for observability.
type NamespaceState struct {
	Name           string          `json:"name"`
	Mode           string          `json:"mode"`
	Symbols        int             `json:"symbols"`
	Submodules     int             `json:"submodules"`
	Loaded         []string        `json:"loaded"`
	Resolved       int             `json:"resolved"`
	Imports        int64           `json:"imports"`
	ImportFailures int64           `json:"import_failures"`
	Adopted        int64           `json:"adopted"`
	Backends       map[string]bool `json:"backends"`
	TableType      string          `json:"table_type"`
	Table          any             `json:"table,omitempty"`
}

// State implements introspection.Introspectable.
func (n *Namespace) State() any {
	resolved := 0
	n.values.Range(func(_, _ any) bool {
		resolved++
		return true
	})

	backends := make(map[string]bool)
	for b, v := range n.table.Backends() {
		backends[string(b)] = v
	}

	tableType := "table"
	var tableState any
	if comp, ok := n.table.(introspection.Component); ok {
		tableType = comp.ComponentType()
	}
	if intro, ok := n.table.(introspection.Introspectable); ok {
		tableState = intro.State()
	}

	return NamespaceState{
		Name:           n.name,
		Mode:           n.cfg.Mode.String(),
		Symbols:        n.table.Count(),
		Submodules:     len(n.table.Submodules()),
		Loaded:         n.Loaded(),
		Resolved:       resolved,
		Imports:        n.imports.Load(),
		ImportFailures: n.failures.Load(),
		Adopted:        n.adopted.Load(),
		Backends:       backends,
		TableType:      tableType,
		Table:          tableState,
	}
}

// ComponentType implements introspection.Component.
func (n *Namespace) ComponentType() string {
	return "namespace"
}

var _ introspection.Introspectable = (*Namespace)(nil)
var _ introspection.Component = (*Namespace)(nil)
