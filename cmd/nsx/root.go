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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/nsx"
	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/config"
	"dirpx.dev/nsx/generation"
	"dirpx.dev/nsx/importer"
	"dirpx.dev/nsx/manifest"
	"dirpx.dev/nsx/namespace"
	"dirpx.dev/nsx/oracle"
)

// errAbsent makes the process exit 1 without printing anything.
var errAbsent = errors.New("absent")

// app carries the global flags and the state built from them.
type app struct {
	configPath string
	manifest   string
	enable     []string
	disable    []string
	logLevel   string
	logFormat  string
	verbose    bool

	settings config.Settings
	logger   *slog.Logger
	cfg      apis.Config
	decl     apis.Declaration
	oracle   apis.Oracle
	importer apis.Importer
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "nsx",
		Short: "Inspect and verify lazy namespaces",
		Long: `nsx lists, resolves and verifies the names of a lazy namespace.

By default it works on the built-in "generation" namespace; --manifest
points it at a YAML or HCL declaration instead. Backend availability comes
from NSX_BACKEND_<NAME> variables, .env files, the config file and the
--enable/--disable flags, in increasing order of precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	f.StringVar(&a.manifest, "manifest", "", "namespace declaration (.yaml, .yml or .hcl)")
	f.StringSliceVar(&a.enable, "enable", nil, "force backends available")
	f.StringSliceVar(&a.disable, "disable", nil, "force backends unavailable")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newListCmd(a),
		newHasCmd(a),
		newGetCmd(a),
		newSubmodulesCmd(a),
		newCheckCmd(a),
		newDumpCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup resolves settings and installs the namespace.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	if a.manifest != "" {
		s.Manifest = a.manifest
	}
	if a.logLevel != "" {
		s.LogLevel = a.logLevel
	}
	if a.verbose {
		s.LogLevel = "debug"
	}
	if a.logFormat != "" {
		s.LogFormat = a.logFormat
	}
	a.settings = s

	a.logger = config.NewLogger(s.LogLevel, s.LogFormat, cmd.ErrOrStderr())
	slog.SetDefault(a.logger)

	if a.cfg, err = s.Config(a.logger); err != nil {
		return err
	}

	a.decl = generation.Declaration()
	if s.Manifest != "" {
		if a.decl, err = manifest.Load(s.Manifest); err != nil {
			return err
		}
		a.logger.Debug("Loaded manifest.", "path", s.Manifest, "namespace", a.decl.Name)
	}

	base, err := oracle.FromEnv(oracle.DefaultEnvPrefix, oracle.All(true), s.EnvFiles...)
	if err != nil {
		return err
	}
	fixed := s.BackendOverrides()
	for _, b := range a.enable {
		fixed[apis.Backend(strings.ToLower(b))] = true
	}
	for _, b := range a.disable {
		fixed[apis.Backend(strings.ToLower(b))] = false
	}
	a.oracle = oracle.Memoize(oracle.Override(base, fixed))
	a.importer = importer.Default()

	if cmd.Name() == "version" {
		return nil
	}
	return nsx.SetAll(&a.cfg, &a.decl, a.oracle, a.importer, nil)
}

// namespace returns the installed namespace.
func (a *app) namespace() (*namespace.Namespace, error) {
	ns, ok := nsx.Namespace().(*namespace.Namespace)
	if !ok {
		return nil, fmt.Errorf("unexpected namespace implementation %T", nsx.Namespace())
	}
	return ns, nil
}
