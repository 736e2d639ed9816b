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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/config"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := config.LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "lazy", s.Mode)
	assert.Equal(t, config.DefaultSuggestions, s.Suggestions)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nsx.yaml")
	body := `
mode: eager
suggestions: 1
manifest: decl.hcl
backends:
  torch: false
  TF: true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("NSX_LOG_LEVEL", "debug")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "eager", s.Mode)
	assert.Equal(t, 1, s.Suggestions)
	assert.Equal(t, "decl.hcl", s.Manifest)
	assert.Equal(t, "debug", s.LogLevel)

	overrides := s.BackendOverrides()
	assert.Equal(t, map[apis.Backend]bool{"torch": false, "tf": true}, overrides)

	cfg, err := s.Config(nil)
	require.NoError(t, err)
	assert.Equal(t, apis.ModeEager, cfg.Mode)
	assert.Equal(t, 1, cfg.Suggestions)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSettingsConfig_BadMode(t *testing.T) {
	_, err := config.Settings{Mode: "sometimes"}.Config(nil)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := config.NewLogger("warn", "json", &buf)
	l.Info("hidden")
	l.Warn("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "json handler expected, got %q", out)
	assert.Contains(t, out, `"k":"v"`)
}
