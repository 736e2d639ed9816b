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

package generation

import (
	"dirpx.dev/nsx"
	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/importer"
	"dirpx.dev/nsx/namespace"
	"dirpx.dev/nsx/oracle"
	"dirpx.dev/nsx/registry"
)

// DefaultOracle reports every backend available unless switched off through
// NSX_BACKEND_<NAME> in the environment or in one of the given .env files.
func DefaultOracle(files ...string) (apis.Oracle, error) {
	return oracle.FromEnv(oracle.DefaultEnvPrefix, oracle.All(true), files...)
}

// New builds a standalone generation namespace over the process-wide
// importer. A nil oracle selects DefaultOracle.
func New(cfg apis.Config, ora apis.Oracle, opts ...namespace.Option) (*namespace.Namespace, error) {
	if ora == nil {
		var err error
		if ora, err = DefaultOracle(); err != nil {
			return nil, err
		}
	}
	tbl, err := registry.Build(cfg, Declaration(), ora)
	if err != nil {
		return nil, err
	}
	return namespace.New(cfg, Name, tbl, importer.Default(), opts...)
}

// Install publishes the generation namespace as the process-wide nsx
// namespace. A nil oracle selects DefaultOracle.
func Install(ora apis.Oracle) (apis.Namespace, error) {
	if ora == nil {
		var err error
		if ora, err = DefaultOracle(); err != nil {
			return nil, err
		}
	}
	return nsx.Install(Declaration(), ora, importer.Default())
}
