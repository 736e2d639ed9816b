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

// Backend identifies an optional heavy runtime (for example "torch") whose
// presence is not guaranteed. The empty Backend means "always available".
type Backend string

// None is the empty backend tag used by groups that need no optional runtime.
const None Backend = ""

// String returns the backend name, or "none" for the empty tag.
func (b Backend) String() string {
	if b == None {
		return "none"
	}
	return string(b)
}

// Predicate answers whether a single backend is present and importable.
// Predicates must be deterministic for the life of the process. A non-nil
// error is a configuration fault and is never treated as "unavailable".
type Predicate func() (bool, error)

// Oracle answers availability questions for backends.
type Oracle interface {
	// Available reports whether backend b can be imported right now.
	Available(b Backend) (bool, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(b Backend) (bool, error)

// Available implements Oracle.
func (f OracleFunc) Available(b Backend) (bool, error) {
	return f(b)
}
