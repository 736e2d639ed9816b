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

// Package manifest loads and saves namespace declarations.
//
// Two formats are understood. YAML mirrors apis.Declaration field for field:
//
//	namespace: demo
//	groups:
//	  - submodule: core
//	    symbols: [Foo, Bar]
//	  - submodule: gpu_ext
//	    symbols: [Baz]
//	    backend: gpu
//
// HCL uses one labeled block per submodule:
//
//	namespace = "demo"
//
//	submodule "core" {
//	  symbols = ["Foo", "Bar"]
//	}
//
//	submodule "gpu_ext" {
//	  symbols = ["Baz"]
//	  backend = "gpu"
//	}
//
// Declarations are validated after decoding, so a manifest that loads can
// always be built into a table.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/registry"
)

// Format names a manifest encoding.
type Format string

const (
	// FormatYAML is the YAML encoding.
	FormatYAML Format = "yaml"
	// FormatHCL is the HCL encoding.
	FormatHCL Format = "hcl"
)

// ErrUnknownFormat is returned for unsupported formats or file extensions.
var ErrUnknownFormat = errors.New("nsx(manifest): unknown format")

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads and validates the declaration stored at path.
func Load(path string) (apis.Declaration, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return apis.Declaration{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Declaration{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return Decode(data, format, path)
}

// Decode parses data in the given format and validates the result.
// filename is only used in diagnostics.
func Decode(data []byte, format Format, filename string) (apis.Declaration, error) {
	var (
		decl apis.Declaration
		err  error
	)
	switch format {
	case FormatYAML:
		decl, err = decodeYAML(data)
	case FormatHCL:
		decl, err = decodeHCL(data, filename)
	default:
		return apis.Declaration{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return apis.Declaration{}, fmt.Errorf("failed to decode manifest %s: %w", filename, err)
	}
	if err := registry.Validate(decl); err != nil {
		return apis.Declaration{}, fmt.Errorf("invalid manifest %s: %w", filename, err)
	}
	return decl, nil
}

func decodeYAML(data []byte) (apis.Declaration, error) {
	var decl apis.Declaration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&decl); err != nil && !errors.Is(err, io.EOF) {
		return apis.Declaration{}, err
	}
	return decl, nil
}

// hclManifest represents the top-level structure of an HCL manifest.
type hclManifest struct {
	Namespace string     `hcl:"namespace,optional"`
	Groups    []hclGroup `hcl:"submodule,block"`
}

// hclGroup is one submodule block.
type hclGroup struct {
	Name    string   `hcl:"name,label"`
	Symbols []string `hcl:"symbols"`
	Backend string   `hcl:"backend,optional"`
}

func decodeHCL(data []byte, filename string) (apis.Declaration, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return apis.Declaration{}, diags
	}

	var m hclManifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return apis.Declaration{}, diags
	}

	decl := apis.Declaration{Name: m.Namespace, Groups: make([]apis.Group, 0, len(m.Groups))}
	for _, g := range m.Groups {
		decl.Groups = append(decl.Groups, apis.Group{
			Submodule: g.Name,
			Symbols:   g.Symbols,
			Backend:   apis.Backend(g.Backend),
		})
	}
	return decl, nil
}

// Encode writes decl to w as YAML.
func Encode(w io.Writer, decl apis.Declaration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(decl); err != nil {
		return err
	}
	return enc.Close()
}

// Save writes decl to path as YAML.
func Save(path string, decl apis.Declaration) error {
	var buf bytes.Buffer
	if err := Encode(&buf, decl); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
