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

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors.
var (
	// ErrUnknownSymbol is returned when a name was never exported.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrExportConsistency is returned when a declared symbol is missing from
	// its imported submodule.
	ErrExportConsistency = errors.New("export consistency violation")

	// ErrBackendImport is returned when a submodule import fails.
	ErrBackendImport = errors.New("backend import failed")

	// ErrCollision is returned when two declarations export the same symbol.
	ErrCollision = errors.New("symbol collision")

	// ErrProbe is returned when an availability predicate cannot answer.
	ErrProbe = errors.New("backend probe failed")

	// ErrInvalidDeclaration is returned for malformed declarations.
	ErrInvalidDeclaration = errors.New("invalid declaration")

	// ErrTypeMismatch is returned when a resolved value has an unexpected type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// UnknownSymbolError reports a lookup of a name the table does not export.
type UnknownSymbolError struct {
	Symbol      string
	Namespace   string
	Submodules  []string
	Suggestions []string
	// OmittedBy and Backend are set only when the symbol is declared by a
	// submodule whose backend was unavailable when the table was built.
	OmittedBy string
	Backend   string
}

func (e *UnknownSymbolError) Error() string {
	var b strings.Builder
	if e.Namespace != "" {
		fmt.Fprintf(&b, "%s: ", e.Namespace)
	}
	fmt.Fprintf(&b, "symbol %q is not exported", e.Symbol)
	if e.OmittedBy != "" {
		fmt.Fprintf(&b, " (declared by submodule %q, which requires unavailable backend %q)", e.OmittedBy, e.Backend)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, "; did you mean %s?", strings.Join(quoteAll(e.Suggestions), ", "))
	}
	if len(e.Submodules) > 0 {
		fmt.Fprintf(&b, "; known submodules: %s", strings.Join(e.Submodules, ", "))
	}
	return b.String()
}

func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// ExportConsistencyError reports a symbol declared by a submodule that the
// imported submodule does not bind.
type ExportConsistencyError struct {
	Symbol    string
	Submodule string
}

func (e *ExportConsistencyError) Error() string {
	return fmt.Sprintf("export consistency violation: submodule %q declares %q but does not bind it", e.Submodule, e.Symbol)
}

func (e *ExportConsistencyError) Is(target error) bool {
	return target == ErrExportConsistency
}

// BackendImportError annotates an import failure with its submodule.
type BackendImportError struct {
	Namespace string
	Submodule string
	Backend   string
	Err       error
}

func (e *BackendImportError) Error() string {
	prefix := ""
	if e.Namespace != "" {
		prefix = e.Namespace + ": "
	}
	if e.Backend != "" {
		return fmt.Sprintf("%simport of submodule %q (backend %q) failed: %v", prefix, e.Submodule, e.Backend, e.Err)
	}
	return fmt.Sprintf("%simport of submodule %q failed: %v", prefix, e.Submodule, e.Err)
}

func (e *BackendImportError) Is(target error) bool {
	return target == ErrBackendImport
}

func (e *BackendImportError) Unwrap() error {
	return e.Err
}

// CollisionError reports a symbol exported by two submodules, or twice by one.
type CollisionError struct {
	Symbol string
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	if e.First == e.Second {
		return fmt.Sprintf("symbol %q declared twice by submodule %q", e.Symbol, e.First)
	}
	return fmt.Sprintf("symbol %q declared by both %q and %q", e.Symbol, e.First, e.Second)
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// ProbeError reports a backend predicate that failed to answer.
type ProbeError struct {
	Backend string
	Err     error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe for backend %q failed: %v", e.Backend, e.Err)
}

func (e *ProbeError) Is(target error) bool {
	return target == ErrProbe
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// DeclarationError reports a malformed group in a declaration.
type DeclarationError struct {
	Group   int
	Message string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("invalid declaration (group %d): %s", e.Group, e.Message)
}

func (e *DeclarationError) Is(target error) bool {
	return target == ErrInvalidDeclaration
}

// Helper functions for creating errors

// NewExportConsistencyError creates a new ExportConsistencyError
func NewExportConsistencyError(submodule, symbol string) error {
	return &ExportConsistencyError{Symbol: symbol, Submodule: submodule}
}

// NewCollisionError creates a new CollisionError
func NewCollisionError(symbol, first, second string) error {
	return &CollisionError{Symbol: symbol, First: first, Second: second}
}

// NewProbeError creates a new ProbeError
func NewProbeError(backend string, err error) error {
	return &ProbeError{Backend: backend, Err: err}
}

// NewDeclarationError creates a new DeclarationError
func NewDeclarationError(group int, format string, args ...any) error {
	return &DeclarationError{Group: group, Message: fmt.Sprintf(format, args...)}
}

// IsUnknownSymbol checks if an error is an unknown symbol error
func IsUnknownSymbol(err error) bool {
	return errors.Is(err, ErrUnknownSymbol)
}

// IsExportConsistency checks if an error is an export consistency error
func IsExportConsistency(err error) bool {
	return errors.Is(err, ErrExportConsistency)
}

// IsBackendImport checks if an error is a backend import error
func IsBackendImport(err error) bool {
	return errors.Is(err, ErrBackendImport)
}

// IsCollision checks if an error is a symbol collision error
func IsCollision(err error) bool {
	return errors.Is(err, ErrCollision)
}

// IsProbe checks if an error is a backend probe error
func IsProbe(err error) bool {
	return errors.Is(err, ErrProbe)
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
