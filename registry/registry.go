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
	"errors"
	"slices"

	"dirpx.dev/nsx/apis"
	nsxerrors "dirpx.dev/nsx/errors"
)

var (
	// ErrNilOracle is returned when a declaration has gated groups but no oracle.
	ErrNilOracle = errors.New("nsx(registry): nil oracle with backend-gated groups")
)

// Build constructs the export table for decl.
//
// Untagged groups are exported unconditionally. Each distinct backend is
// probed exactly once; groups whose backend is unavailable are recorded as
// omitted, which is a normal deployment configuration and not an error.
// Symbol collisions are checked across every declared group, available or
// not, so a declaration that is valid on one machine is valid everywhere.
func Build(cfg apis.Config, decl apis.Declaration, oracle apis.Oracle) (*Table, error) {
	if err := Validate(decl); err != nil {
		return nil, err
	}

	log := cfg.Log()
	t := &Table{
		index:   make(map[string]*apis.Descriptor, decl.SymbolCount()),
		omitted: make(map[string]*apis.Descriptor),
		subs:    make(map[string]*apis.Descriptor, len(decl.Groups)),
		avail:   make(map[apis.Backend]bool),
	}

	for _, g := range decl.Groups {
		desc := &apis.Descriptor{
			Submodule: g.Submodule,
			Symbols:   slices.Clone(g.Symbols),
			Backend:   g.Backend,
		}

		if g.Backend != apis.None {
			ok, probed := t.avail[g.Backend]
			if !probed {
				if oracle == nil {
					return nil, ErrNilOracle
				}
				var err error
				ok, err = oracle.Available(g.Backend)
				if err != nil {
					return nil, err
				}
				t.avail[g.Backend] = ok
			}
			if !ok {
				for _, s := range desc.Symbols {
					t.omitted[s] = desc
				}
				t.nomitted++
				log.Debug("Omitting submodule with unavailable backend.",
					"namespace", decl.Name, "submodule", g.Submodule, "backend", g.Backend.String())
				continue
			}
		}

		t.subs[desc.Submodule] = desc
		t.order = append(t.order, desc.Submodule)
		for _, s := range desc.Symbols {
			t.index[s] = desc
			t.names = append(t.names, s)
		}
	}

	log.Info("Export table built.",
		"namespace", decl.Name,
		"symbols", len(t.names),
		"submodules", len(t.order),
		"omitted_submodules", t.nomitted)
	return t, nil
}

// Validate rejects malformed declarations and symbol collisions without
// consulting any oracle.
func Validate(decl apis.Declaration) error {
	owners := make(map[string]string, decl.SymbolCount())
	subs := make(map[string]struct{}, len(decl.Groups))
	for i, g := range decl.Groups {
		if g.Submodule == "" {
			return nsxerrors.NewDeclarationError(i, "empty submodule name")
		}
		if _, dup := subs[g.Submodule]; dup {
			return nsxerrors.NewDeclarationError(i, "duplicate submodule %q", g.Submodule)
		}
		subs[g.Submodule] = struct{}{}
		for _, s := range g.Symbols {
			if s == "" {
				return nsxerrors.NewDeclarationError(i, "empty symbol name in submodule %q", g.Submodule)
			}
			if prev, dup := owners[s]; dup {
				return nsxerrors.NewCollisionError(s, prev, g.Submodule)
			}
			owners[s] = g.Submodule
		}
	}
	return nil
}

// Table is the immutable export table. It is never mutated after Build
// returns, so concurrent reads need no locking.
type Table struct {
	// index maps exported symbol to its owning descriptor.
	index map[string]*apis.Descriptor
	// omitted maps symbols of unavailable groups to their descriptor.
	omitted map[string]*apis.Descriptor
	// subs maps exported submodule name to descriptor.
	subs map[string]*apis.Descriptor
	// names holds exported symbols in declaration order.
	names []string
	// order holds exported submodules in declaration order.
	order []string
	// avail is the availability snapshot taken during Build.
	avail map[apis.Backend]bool
	// nomitted counts omitted groups.
	nomitted int
}

// Ensure Table implements apis.Table.
var _ apis.Table = (*Table)(nil)

// Lookup returns the descriptor owning symbol.
func (t *Table) Lookup(symbol string) (*apis.Descriptor, bool) {
	d, ok := t.index[symbol]
	return d, ok
}

// Omitted returns the descriptor that declared symbol if its backend was
// unavailable.
func (t *Table) Omitted(symbol string) (*apis.Descriptor, bool) {
	d, ok := t.omitted[symbol]
	return d, ok
}

// Descriptor returns an exported submodule by name.
func (t *Table) Descriptor(submodule string) (*apis.Descriptor, bool) {
	d, ok := t.subs[submodule]
	return d, ok
}

// Names returns a copy of the exported symbols in declaration order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Submodules returns a copy of the exported submodules in declaration order.
func (t *Table) Submodules() []string {
	return slices.Clone(t.order)
}

// Backends returns a copy of the availability snapshot.
func (t *Table) Backends() map[apis.Backend]bool {
	out := make(map[apis.Backend]bool, len(t.avail))
	for b, v := range t.avail {
		out[b] = v
	}
	return out
}

// Count returns the number of exported symbols.
func (t *Table) Count() int {
	return len(t.names)
}

// OmittedSubmodules returns the number of groups left out of the table.
func (t *Table) OmittedSubmodules() int {
	return t.nomitted
}
