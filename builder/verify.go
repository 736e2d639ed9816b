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
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/nsx/apis"
	nsxerrors "dirpx.dev/nsx/errors"
	"dirpx.dev/nsx/namespace"
	"dirpx.dev/nsx/strategy"
)

// ErrUndeclaredBinding is reported when a submodule binds a symbol that its
// group does not declare.
var ErrUndeclaredBinding = errors.New("nsx(builder): undeclared binding")

// Report is the outcome of Verify.
type Report struct {
	// Submodules is the number of submodules imported.
	Submodules int
	// Symbols is the number of declared symbols checked.
	Symbols int
	// Errors holds every failure found, in declaration order.
	Errors []error
}

// Err joins the report's failures, or returns nil.
func (r *Report) Err() error {
	return errors.Join(r.Errors...)
}

// Verify imports every declared submodule regardless of backend availability
// and checks that each declared symbol resolves from its submodule. Handles
// that can be enumerated are also checked for bindings the declaration does
// not list. A nil resolver selects namespace.DefaultResolver.
//
// Verify is the eager consistency path: it sees the same declaration the
// lazy namespace is built from, so a passing Verify means no declared name
// can fail with ExportConsistencyError at runtime.
func Verify(cfg apis.Config, decl apis.Declaration, imp apis.Importer, res apis.Resolver) (*Report, error) {
	if imp == nil {
		return nil, namespace.ErrNilImporter
	}
	if res == nil {
		res = namespace.DefaultResolver()
	}

	log := cfg.Log()
	r := &Report{}
	for _, g := range decl.Groups {
		h, err := imp.Import(g.Submodule)
		if err != nil {
			r.Errors = append(r.Errors, &nsxerrors.BackendImportError{
				Namespace: decl.Name,
				Submodule: g.Submodule,
				Backend:   string(g.Backend),
				Err:       err,
			})
			continue
		}
		r.Submodules++

		for _, s := range g.Symbols {
			r.Symbols++
			if _, ok := res.Resolve(h, s, cfg); !ok {
				r.Errors = append(r.Errors, nsxerrors.NewExportConsistencyError(g.Submodule, s))
			}
		}

		bound, ok := strategy.Enumerate(h, cfg)
		if !ok {
			continue
		}
		slices.Sort(bound)
		for _, s := range bound {
			if !slices.Contains(g.Symbols, s) {
				r.Errors = append(r.Errors, fmt.Errorf("%w: submodule %q binds %q", ErrUndeclaredBinding, g.Submodule, s))
			}
		}
	}

	log.Info("Declaration verified.",
		"namespace", decl.Name,
		"submodules", r.Submodules,
		"symbols", r.Symbols,
		"errors", len(r.Errors))
	return r, r.Err()
}
