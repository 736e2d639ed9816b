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

package config

import (
	"log/slog"

	"dirpx.dev/nsx/apis"
)

const (
	// DefaultMode represents the default for Mode.
	// Lazy resolution is what callers get unless they opt into eager loading.
	DefaultMode = apis.ModeLazy
	// DefaultSuggestions represents the default for Suggestions.
	// Three "did you mean" candidates are enough to spot a typo.
	DefaultSuggestions = 3
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure numeric knobs are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.Suggestions < 0 {
		cfg.Suggestions = 0
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Mode:        DefaultMode,
		Suggestions: DefaultSuggestions,
		MaxUnwrap:   DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMode sets the Mode option.
func WithMode(m apis.Mode) Option {
	return func(c *apis.Config) {
		c.Mode = m
	}
}

// WithEager is shorthand for WithMode(apis.ModeEager) when eager is true.
func WithEager(eager bool) Option {
	return func(c *apis.Config) {
		if eager {
			c.Mode = apis.ModeEager
			return
		}
		c.Mode = apis.ModeLazy
	}
}

// WithSuggestions sets the Suggestions option.
// A negative value disables suggestions.
func WithSuggestions(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			n = 0
		}
		c.Suggestions = n
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithLogger sets the Logger option.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
