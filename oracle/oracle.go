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

// Package oracle answers "is backend B importable right now?".
//
// Oracles are consulted by the export table builder once per backend per
// build. They never import anything themselves; they only evaluate the
// predicates supplied by the surrounding environment.
package oracle

import (
	"errors"
	"sync"

	"dirpx.dev/nsx/apis"
	nsxerrors "dirpx.dev/nsx/errors"
)

// ErrNoPredicate is returned when a backend has no registered predicate.
var ErrNoPredicate = errors.New("nsx(oracle): no predicate registered for backend")

// New constructs an Oracle over a fixed predicate set. Predicates are
// evaluated on every call so that rebuilding a table reconsults them.
// The map is copied; later mutation by the caller has no effect.
func New(preds map[apis.Backend]apis.Predicate) apis.Oracle {
	cp := make(map[apis.Backend]apis.Predicate, len(preds))
	for b, p := range preds {
		if p != nil {
			cp[b] = p
		}
	}
	return &predicateOracle{preds: cp}
}

// predicateOracle is an immutable map of predicates.
type predicateOracle struct {
	preds map[apis.Backend]apis.Predicate
}

// Available evaluates the predicate registered for b.
func (o *predicateOracle) Available(b apis.Backend) (bool, error) {
	p, ok := o.preds[b]
	if !ok {
		return false, nsxerrors.NewProbeError(string(b), ErrNoPredicate)
	}
	ok, err := p()
	if err != nil {
		return false, nsxerrors.NewProbeError(string(b), err)
	}
	return ok, nil
}

// Static returns an Oracle answering from a fixed table.
// Backends missing from the table are reported as a configuration error.
func Static(avail map[apis.Backend]bool) apis.Oracle {
	preds := make(map[apis.Backend]apis.Predicate, len(avail))
	for b, v := range avail {
		preds[b] = Const(v)
	}
	return New(preds)
}

// Const returns a predicate that always answers v.
func Const(v bool) apis.Predicate {
	return func() (bool, error) { return v, nil }
}

// Memoize wraps o so each backend is evaluated at most once.
// Errors are memoized too; a backend does not appear or disappear mid-run.
func Memoize(o apis.Oracle) apis.Oracle {
	if o == nil {
		return nil
	}
	if m, ok := o.(*memoOracle); ok {
		return m
	}
	return &memoOracle{inner: o}
}

// memoOracle caches answers per backend.
type memoOracle struct {
	inner apis.Oracle
	m     sync.Map // map[apis.Backend]*memoEntry
}

// memoEntry holds a single evaluated answer.
type memoEntry struct {
	once sync.Once
	ok   bool
	err  error
}

// Available returns the cached answer for b, evaluating it on first use.
func (o *memoOracle) Available(b apis.Backend) (bool, error) {
	v, _ := o.m.LoadOrStore(b, &memoEntry{})
	e := v.(*memoEntry)
	e.once.Do(func() {
		e.ok, e.err = o.inner.Available(b)
	})
	return e.ok, e.err
}

// Override layers fixed answers over base. Backends present in fixed never
// reach base; all others are delegated. A nil base turns unknown backends
// into a configuration error.
func Override(base apis.Oracle, fixed map[apis.Backend]bool) apis.Oracle {
	cp := make(map[apis.Backend]bool, len(fixed))
	for b, v := range fixed {
		cp[b] = v
	}
	return apis.OracleFunc(func(b apis.Backend) (bool, error) {
		if v, ok := cp[b]; ok {
			return v, nil
		}
		if base == nil {
			return false, nsxerrors.NewProbeError(string(b), ErrNoPredicate)
		}
		return base.Available(b)
	})
}

// All returns an Oracle giving the same answer v for every backend.
func All(v bool) apis.Oracle {
	return apis.OracleFunc(func(apis.Backend) (bool, error) {
		return v, nil
	})
}
