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

package config_test

import (
	"testing"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.Mode != config.DefaultMode {
		t.Fatalf("Mode = %v, want %v", got.Mode, config.DefaultMode)
	}
	if got.Suggestions != config.DefaultSuggestions {
		t.Fatalf("Suggestions = %d, want %d", got.Suggestions, config.DefaultSuggestions)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.Logger != nil {
		t.Fatalf("Logger = %v, want nil", got.Logger)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithEager(t *testing.T) {
	c := config.NewConfig(config.WithEager(true))
	if c.Mode != apis.ModeEager {
		t.Fatalf("Mode = %v, want eager", c.Mode)
	}

	c2 := config.NewConfig(config.WithEager(true), config.WithEager(false))
	if c2.Mode != apis.ModeLazy {
		t.Fatalf("Mode = %v, want lazy", c2.Mode)
	}
}

func TestWithSuggestions_Negative_Disables(t *testing.T) {
	c := config.NewConfig(config.WithSuggestions(-4))
	if c.Suggestions != 0 {
		t.Fatalf("Suggestions = %d, want 0", c.Suggestions)
	}
}

func TestWithMaxUnwrap_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(-1))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithMode(apis.ModeEager),
		config.WithMode(apis.ModeLazy),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithSuggestions(1),
		config.WithSuggestions(7),
	)

	if c.Mode != apis.ModeLazy {
		t.Errorf("Mode = %v, want lazy (last option wins)", c.Mode)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
	if c.Suggestions != 7 {
		t.Errorf("Suggestions = %d, want 7 (last option wins)", c.Suggestions)
	}
}

func TestNewConfig_Guardrails_MaxUnwrapZeroAllowed(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(0))
	if c.MaxUnwrap != 0 {
		t.Fatalf("MaxUnwrap = %d, want 0 (zero is allowed)", c.MaxUnwrap)
	}
}

func TestLog_FallsBackToDefault(t *testing.T) {
	if config.DefaultConfig().Log() == nil {
		t.Fatal("Log() returned nil")
	}
}
