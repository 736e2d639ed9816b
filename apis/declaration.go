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

// Group declares one submodule and the ordered symbols it exports.
// A Group with Backend == None is always available; otherwise the group is
// only exported when the oracle reports its backend available.
type Group struct {
	// Submodule is the unique name of the owning implementation unit.
	Submodule string `yaml:"submodule" json:"submodule"`
	// Symbols lists exported names in declaration order.
	Symbols []string `yaml:"symbols" json:"symbols"`
	// Backend is the optional runtime the submodule requires.
	Backend Backend `yaml:"backend,omitempty" json:"backend,omitempty"`
}

// Declaration is the static, ordered description of a namespace.
// It is the single source shared by the lazy and eager code paths.
type Declaration struct {
	// Name labels the namespace in diagnostics (e.g. "generation").
	Name string `yaml:"namespace" json:"namespace"`
	// Groups are consulted in order; order defines Names() ordering.
	Groups []Group `yaml:"groups" json:"groups"`
}

// Backends returns the distinct non-empty backends referenced by d,
// in first-seen order.
func (d Declaration) Backends() []Backend {
	seen := make(map[Backend]struct{})
	var out []Backend
	for _, g := range d.Groups {
		if g.Backend == None {
			continue
		}
		if _, ok := seen[g.Backend]; ok {
			continue
		}
		seen[g.Backend] = struct{}{}
		out = append(out, g.Backend)
	}
	return out
}

// SymbolCount returns the number of declared symbols across all groups.
func (d Declaration) SymbolCount() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Symbols)
	}
	return n
}
