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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nsxerrors "dirpx.dev/nsx/errors"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestList_MatchAndDisable(t *testing.T) {
	out, err := run(t, "list", "--match", "*TopK*", "--disable", "tf,flax")
	require.NoError(t, err)
	assert.Contains(t, out, "TopKLogitsWarper")
	assert.NotContains(t, out, "TFTopKLogitsWarper")
	assert.NotContains(t, out, "FlaxTopKLogitsWarper")
}

func TestList_JSONOmitted(t *testing.T) {
	out, err := run(t, "list", "--json", "--omitted", "--disable", "torch", "--match", "GenerationConfig")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, listEntry{Name: "GenerationConfig", Submodule: "configuration_utils", Available: true}, entries[0])

	var sawTorch bool
	for _, e := range entries[1:] {
		assert.False(t, e.Available)
		if e.Backend == "torch" {
			sawTorch = true
		}
	}
	assert.True(t, sawTorch, "omitted torch names must be listed")
}

func TestHas(t *testing.T) {
	_, err := run(t, "has", "GenerationConfig")
	require.NoError(t, err)

	_, err = run(t, "has", "TFTopKLogitsWarper", "--disable", "tf")
	assert.ErrorIs(t, err, errAbsent)
}

func TestGet(t *testing.T) {
	out, err := run(t, "get", "TopPLogitsWarper", "--enable", "torch")
	require.NoError(t, err)
	assert.Contains(t, out, "logits_process.TopPLogitsWarper")

	out, err = run(t, "get", "validate_stopping_criteria", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "func"`)

	_, err = run(t, "get", "TopKLogitWarper")
	assert.True(t, nsxerrors.IsUnknownSymbol(err))
	assert.Contains(t, err.Error(), `did you mean "TopKLogitsWarper"`)
}

func TestSubmodules(t *testing.T) {
	out, err := run(t, "submodules", "--disable", "torch,tf,flax")
	require.NoError(t, err)
	assert.Equal(t, "configuration_utils\tnone\t2\nstreamers\tnone\t2\n", out)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--disable", "torch")
	require.NoError(t, err)
	assert.Contains(t, out, "checked 112 symbols in 12 submodules, 0 problems")
}

func TestManifest(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ns.hcl")
	require.NoError(t, os.WriteFile(p, []byte(`
namespace = "custom"

submodule "streamers" {
  symbols = ["TextIteratorStreamer", "TextStreamer"]
}

submodule "missing" {
  symbols = ["Ghost"]
  backend = "gpu"
}
`), 0o644))

	out, err := run(t, "list", "--manifest", p, "--disable", "gpu")
	require.NoError(t, err)
	assert.Contains(t, out, "TextStreamer")
	assert.NotContains(t, out, "Ghost")

	_, err = run(t, "get", "Ghost", "--manifest", p, "--enable", "gpu")
	assert.True(t, nsxerrors.IsBackendImport(err), "got %v", err)

	out, err = run(t, "check", "--manifest", p)
	assert.Error(t, err)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "1 problems")
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "namespace: generation")
	assert.Contains(t, out, "submodule: logits_process")

	out, err = run(t, "dump", "--state", "--disable", "flax")
	require.NoError(t, err)
	var st map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, "generation", st["name"])
	assert.Equal(t, "lazy", st["mode"])
	assert.Equal(t, "export_table", st["table_type"])

	_, err = run(t, "dump", "--format", "toml")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nsx.yaml")
	require.NoError(t, os.WriteFile(p, []byte("backends:\n  tf: false\nsuggestions: 0\n"), 0o644))

	_, err := run(t, "has", "TFTopKLogitsWarper", "--config", p)
	assert.ErrorIs(t, err, errAbsent)

	// Flags win over the config file.
	_, err = run(t, "has", "TFTopKLogitsWarper", "--config", p, "--enable", "tf")
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "nsx dev")
}
