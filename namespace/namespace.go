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
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/singleflight"

	"dirpx.dev/nsx/apis"
	nsxerrors "dirpx.dev/nsx/errors"
	"dirpx.dev/nsx/resolver"
	"dirpx.dev/nsx/strategy"
)

var (
	// ErrNilTable is returned when a namespace is built without a table.
	ErrNilTable = errors.New("nsx(namespace): nil export table")
	// ErrNilImporter is returned when a namespace is built without an importer.
	ErrNilImporter = errors.New("nsx(namespace): nil importer")
	// ErrBadPattern is returned by Match for malformed glob patterns.
	ErrBadPattern = errors.New("nsx(namespace): malformed pattern")
)

// Namespace is the lazily resolved view over an export table.
// It is safe for concurrent use.
type Namespace struct {
	// cfg is the configuration the namespace was built with.
	cfg apis.Config
	// name labels the namespace in diagnostics.
	name string
	// table is the read-only export table.
	table apis.Table
	// imp loads submodules by name.
	imp apis.Importer
	// res extracts symbols from loaded handles.
	res apis.Resolver
	// prev donates already-imported handles at construction.
	prev apis.Namespace

	// values caches resolved symbols: map[string]any.
	values sync.Map
	// handles caches imported submodules: map[string]any.
	handles sync.Map
	// group collapses concurrent imports of the same submodule.
	group singleflight.Group

	imports  atomic.Int64
	failures atomic.Int64
	adopted  atomic.Int64
}

// Ensure Namespace implements apis.Namespace.
var _ apis.Namespace = (*Namespace)(nil)

// Option customizes a Namespace during construction.
type Option func(*Namespace)

// WithResolver replaces the default extraction chain.
func WithResolver(r apis.Resolver) Option {
	return func(n *Namespace) {
		if r != nil {
			n.res = r
		}
	}
}

// WithPrevious lets the new namespace adopt submodule handles already
// imported by prev, for submodules that are still exported.
func WithPrevious(prev apis.Namespace) Option {
	return func(n *Namespace) {
		n.prev = prev
	}
}

// DefaultResolver returns the module -> bindings -> reflect chain.
func DefaultResolver() apis.Resolver {
	return resolver.New(
		strategy.NewModuleStrategy(),
		strategy.NewBindingsStrategy(),
		strategy.NewReflectStrategy(),
	)
}

// New constructs a Namespace over table. Nothing is imported unless cfg
// selects eager mode, in which case every exported name is resolved before
// New returns.
func New(cfg apis.Config, name string, table apis.Table, imp apis.Importer, opts ...Option) (*Namespace, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if imp == nil {
		return nil, ErrNilImporter
	}
	n := &Namespace{
		cfg:   cfg,
		name:  name,
		table: table,
		imp:   imp,
		res:   DefaultResolver(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if p, ok := n.prev.(*Namespace); ok && p != nil {
		n.adopt(p)
	}
	n.prev = nil

	if cfg.Mode == apis.ModeEager {
		if err := n.ResolveAll(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// adopt copies handles for submodules that the new table still exports.
func (n *Namespace) adopt(prev *Namespace) {
	prev.handles.Range(func(k, v any) bool {
		sub := k.(string)
		if _, ok := n.table.Descriptor(sub); ok {
			n.handles.Store(sub, v)
			n.adopted.Add(1)
		}
		return true
	})
	if c := n.adopted.Load(); c > 0 {
		n.cfg.Log().Debug("Adopted imported submodules from previous namespace.",
			"namespace", n.name, "count", c)
	}
}

// Get resolves name, importing its owning submodule on first use.
func (n *Namespace) Get(name string) (any, error) {
	if v, ok := n.values.Load(name); ok {
		return v, nil
	}

	desc, ok := n.table.Lookup(name)
	if !ok {
		return nil, n.unknown(name)
	}

	h, err := n.load(desc)
	if err != nil {
		return nil, err
	}

	v, ok := n.res.Resolve(h, name, n.cfg)
	if !ok {
		return nil, nsxerrors.NewExportConsistencyError(desc.Submodule, name)
	}

	actual, _ := n.values.LoadOrStore(name, v)
	return actual, nil
}

// load returns the handle for desc, importing it at most once at a time.
func (n *Namespace) load(desc *apis.Descriptor) (any, error) {
	if h, ok := n.handles.Load(desc.Submodule); ok {
		return h, nil
	}
	h, err, _ := n.group.Do(desc.Submodule, func() (any, error) {
		// Another flight may have finished between the check above and Do.
		if h, ok := n.handles.Load(desc.Submodule); ok {
			return h, nil
		}
		log := n.cfg.Log()
		start := time.Now()
		n.imports.Add(1)
		h, err := n.imp.Import(desc.Submodule)
		if err != nil {
			n.failures.Add(1)
			log.Warn("Submodule import failed.",
				"namespace", n.name, "submodule", desc.Submodule, "backend", desc.Backend.String(), "error", err)
			return nil, &nsxerrors.BackendImportError{
				Namespace: n.name,
				Submodule: desc.Submodule,
				Backend:   string(desc.Backend),
				Err:       err,
			}
		}
		n.handles.Store(desc.Submodule, h)
		log.Debug("Imported submodule.",
			"namespace", n.name, "submodule", desc.Submodule, "elapsed", time.Since(start))
		return h, nil
	})
	return h, err
}

// unknown builds the error for a name the table does not export.
func (n *Namespace) unknown(name string) error {
	e := &nsxerrors.UnknownSymbolError{
		Symbol:      name,
		Namespace:   n.name,
		Submodules:  n.table.Submodules(),
		Suggestions: Suggest(name, n.table.Names(), n.cfg.Suggestions),
	}
	if d, ok := n.table.Omitted(name); ok {
		e.OmittedBy = d.Submodule
		e.Backend = string(d.Backend)
	}
	return e
}

// Has reports whether name is exported. It never imports.
func (n *Namespace) Has(name string) bool {
	_, ok := n.table.Lookup(name)
	return ok
}

// Names lists exported names in declaration order. It never imports.
func (n *Namespace) Names() []string {
	return n.table.Names()
}

// Submodules lists exported submodules in declaration order. It never imports.
func (n *Namespace) Submodules() []string {
	return n.table.Submodules()
}

// Match returns the exported names matching a doublestar glob pattern,
// in declaration order. It never imports.
func (n *Namespace) Match(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	var out []string
	for _, name := range n.table.Names() {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, pattern, err)
		}
		if ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// Loaded lists the submodules imported so far, sorted.
func (n *Namespace) Loaded() []string {
	var out []string
	n.handles.Range(func(k, _ any) bool {
		out = append(out, k.(string))
		return true
	})
	slices.Sort(out)
	return out
}

// ResolveAll resolves every exported name and returns the joined errors.
func (n *Namespace) ResolveAll() error {
	var errs []error
	for _, name := range n.table.Names() {
		if _, err := n.Get(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Name returns the namespace label.
func (n *Namespace) Name() string {
	return n.name
}

// Table returns the export table behind the namespace.
func (n *Namespace) Table() apis.Table {
	return n.table
}

// Config returns the configuration the namespace was built with.
func (n *Namespace) Config() apis.Config {
	return n.cfg
}

// As resolves name from ns and asserts it to T.
func As[T any](ns apis.Namespace, name string) (T, error) {
	var zero T
	v, err := ns.Get(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, not %v", nsxerrors.ErrTypeMismatch, name, v, reflect.TypeFor[T]())
	}
	return t, nil
}
