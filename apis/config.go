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

import "log/slog"

// Config carries read-only knobs that influence table construction and
// symbol resolution. It is passed by value and should be treated as
// immutable by implementations.
type Config struct {
	// Mode selects lazy (default) or eager resolution.
	// Eager resolution imports every submodule while the namespace is
	// constructed; it exists for tooling that needs every symbol bound up
	// front and always runs with every backend installed.
	Mode Mode

	// Suggestions caps the number of "did you mean" names attached to an
	// unknown-symbol error. Zero disables suggestions.
	Suggestions int

	// MaxUnwrap limits pointer/interface unwrapping when extracting a symbol
	// from a struct-shaped submodule handle.
	MaxUnwrap int

	// Logger receives construction and import diagnostics.
	// A nil Logger means slog.Default().
	Logger *slog.Logger
}

// Log returns the configured logger, falling back to slog.Default().
func (c Config) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
