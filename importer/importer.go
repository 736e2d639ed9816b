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

// Package importer maps submodule names to the loaders that construct them.
//
// Submodule packages register their loader from init(), the way database/sql
// drivers do, and the lazy namespace calls Import the first time one of the
// submodule's symbols is requested:
//
//	func init() {
//	    importer.Register("beam_search", loadBeamSearch)
//	}
//
// Registration is expected to complete during program initialization.
package importer

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"dirpx.dev/nsx/apis"
)

var (
	// ErrNoLoader is returned when a submodule has no registered loader.
	ErrNoLoader = errors.New("nsx(importer): no loader registered for submodule")
	// ErrNilHandle is returned when a loader succeeds but returns nil.
	ErrNilHandle = errors.New("nsx(importer): loader returned nil handle")
)

// Loaders is a concurrency-safe table of submodule loaders.
type Loaders struct {
	mu      sync.RWMutex
	loaders map[string]apis.Loader
}

// Ensure Loaders implements apis.Importer.
var _ apis.Importer = (*Loaders)(nil)

// New creates an empty loader table.
func New() *Loaders {
	return &Loaders{loaders: make(map[string]apis.Loader)}
}

// Register adds a loader for submodule.
// It panics on a nil loader or a duplicate name to prevent accidental overrides.
func (l *Loaders) Register(submodule string, load apis.Loader) {
	if load == nil {
		panic(fmt.Sprintf("importer: nil loader for submodule %q", submodule))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.loaders[submodule]; exists {
		panic(fmt.Sprintf("importer: loader for submodule %q already registered", submodule))
	}
	slog.Debug("Registering submodule loader.", "submodule", submodule)
	l.loaders[submodule] = load
}

// Has reports whether a loader is registered for submodule.
func (l *Loaders) Has(submodule string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.loaders[submodule]
	return ok
}

// Submodules returns the registered submodule names, sorted.
func (l *Loaders) Submodules() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.loaders))
	for name := range l.loaders {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Import runs the loader for submodule. Nothing is cached here; the
// namespace owns the resolution cache.
func (l *Loaders) Import(submodule string) (any, error) {
	l.mu.RLock()
	load, ok := l.loaders[submodule]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoLoader, submodule)
	}
	h, err := load()
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilHandle, submodule)
	}
	return h, nil
}

// std is the process-wide loader table.
var std = New()

// Default returns the process-wide loader table.
func Default() *Loaders {
	return std
}

// Register adds a loader to the process-wide table.
func Register(submodule string, load apis.Loader) {
	std.Register(submodule, load)
}

// Bind returns a loader that always yields the given bindings.
// It suits cheap submodules whose values are constructed up front.
func Bind(bindings map[string]any) apis.Loader {
	return func() (any, error) {
		return bindings, nil
	}
}
