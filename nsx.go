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

package nsx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/builder"
	"dirpx.dev/nsx/config"
	"dirpx.dev/nsx/importer"
	"dirpx.dev/nsx/oracle"
)

// init publishes an empty namespace so readers never observe a nil snapshot.
func init() {
	s := &state{
		cfg: config.DefaultConfig(),
		ora: oracle.All(true),
		imp: importer.Default(),
		bld: builder.New(),
	}
	if err := s.build(nil); err != nil {
		panic(err)
	}
	st.Store(s)
}

var (
	// ErrNilTable is returned when a builder returns a nil table.
	ErrNilTable = errors.New("nsx: builder returned nil table")
	// ErrNilNamespace is returned when a builder returns a nil namespace.
	ErrNilNamespace = errors.New("nsx: builder returned nil namespace")
)

// Install replaces the process-wide declaration and publishes a namespace
// built from it. Nil oracle or importer keep the current ones.
//
// Handles imported by the previous namespace are adopted for submodules that
// still exist, unless an importer is given.
func Install(decl apis.Declaration, ora apis.Oracle, imp apis.Importer) (apis.Namespace, error) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.decl = decl
	if ora != nil {
		next.ora = ora
	}
	if imp != nil {
		next.setImporter(imp)
	}
	if err := next.build(old.adoptable(next)); err != nil {
		return nil, err
	}
	st.Store(next)
	return next.ns, nil
}

// Get resolves name in the installed namespace.
func Get(name string) (any, error) {
	return st.Load().ns.Get(name)
}

// Has reports whether name is exported by the installed namespace.
// It never imports anything.
func Has(name string) bool {
	return st.Load().ns.Has(name)
}

// Names lists the exported names of the installed namespace.
func Names() []string {
	return st.Load().ns.Names()
}

// Submodules lists the exported submodules of the installed namespace.
func Submodules() []string {
	return st.Load().ns.Submodules()
}

// Namespace returns the installed namespace.
func Namespace() apis.Namespace {
	return st.Load().ns
}

// Table returns the installed export table.
func Table() apis.Table {
	return st.Load().tbl
}

// Declaration returns the installed declaration.
func Declaration() apis.Declaration {
	return st.Load().decl
}

// Config returns the global nsx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds the namespace.
// In eager mode the rebuild resolves every name before publishing.
func SetConfig(cfg apis.Config) error {
	return update(func(s *state) { s.cfg = cfg })
}

// Oracle returns the global availability oracle.
func Oracle() apis.Oracle {
	return st.Load().ora
}

// SetOracle replaces the availability oracle and rebuilds the export table.
// A nil oracle is ignored.
func SetOracle(o apis.Oracle) error {
	if o == nil {
		return nil
	}
	return update(func(s *state) { s.ora = o })
}

// Importer returns the global importer.
func Importer() apis.Importer {
	return st.Load().imp
}

// SetImporter replaces the importer. Previously imported handles are
// discarded. A nil importer is ignored.
func SetImporter(imp apis.Importer) error {
	if imp == nil {
		return nil
	}
	return update(func(s *state) { s.setImporter(imp) })
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the builder and rebuilds with it. A nil builder is ignored.
func SetBuilder(b apis.Builder) error {
	if b == nil {
		return nil
	}
	return update(func(s *state) { s.bld = b })
}

// Rebuild reconsults the oracle and republishes the namespace, keeping
// already imported handles.
func Rebuild() error {
	return update(func(*state) {})
}

// SetAll explicitly sets all global nsx state components.
//
// Nil arguments leave the corresponding component unchanged.
// Nothing is published if the rebuild fails.
func SetAll(cfg *apis.Config, decl *apis.Declaration, ora apis.Oracle, imp apis.Importer, bld apis.Builder) error {
	return update(func(s *state) {
		if cfg != nil {
			s.cfg = *cfg
		}
		if decl != nil {
			s.decl = *decl
		}
		if ora != nil {
			s.ora = ora
		}
		if imp != nil {
			s.setImporter(imp)
		}
		if bld != nil {
			s.bld = bld
		}
	})
}

// update applies mutate to a copy of the current state, rebuilds and
// publishes it. The previous snapshot stays live when the rebuild fails.
func update(mutate func(*state)) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	mutate(next)
	if err := next.build(old.adoptable(next)); err != nil {
		return err
	}
	st.Store(next)
	return nil
}

// state is the immutable snapshot published to readers.
type state struct {
	// cfg is the configuration used for building.
	cfg apis.Config
	// decl is the installed declaration.
	decl apis.Declaration
	// ora answers backend availability.
	ora apis.Oracle
	// imp loads submodules.
	imp apis.Importer
	// impGen changes whenever imp is replaced.
	impGen uint64
	// bld composes the table and namespace.
	bld apis.Builder
	// tbl is the export table built from decl.
	tbl apis.Table
	// ns is the namespace built over tbl.
	ns apis.Namespace
}

// clone copies the inputs of s; derived fields are left to build.
func (s *state) clone() *state {
	return &state{cfg: s.cfg, decl: s.decl, ora: s.ora, imp: s.imp, impGen: s.impGen, bld: s.bld}
}

// setImporter replaces the importer. Handles loaded through the old one
// are not adopted, even if imp is the same importer again.
func (s *state) setImporter(imp apis.Importer) {
	s.imp = imp
	s.impGen++
}

// adoptable returns s's namespace if next may reuse its imported handles.
func (s *state) adoptable(next *state) apis.Namespace {
	if s.impGen != next.impGen {
		return nil
	}
	return s.ns
}

// build derives tbl and ns from the inputs of s.
func (s *state) build(prev apis.Namespace) error {
	tbl, err := s.bld.BuildTable(s.cfg, s.decl, s.ora)
	if err != nil {
		return err
	}
	if tbl == nil {
		return ErrNilTable
	}
	ns, err := s.bld.BuildNamespace(s.cfg, s.decl.Name, tbl, s.imp, prev)
	if err != nil {
		return err
	}
	if ns == nil {
		return ErrNilNamespace
	}
	s.tbl, s.ns = tbl, ns
	return nil
}

var (
	// st is the global nsx state.
	st atomic.Pointer[state]
	// buildMu is the global nsx build mutex.
	buildMu sync.Mutex
)
