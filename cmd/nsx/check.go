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
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/nsx/builder"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Import every declared submodule and verify its bindings",
		Long: `check imports every submodule of the declaration, whatever the
availability of its backend, and verifies that each declared name is bound
and that no submodule binds a name the declaration leaves out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := builder.Verify(a.cfg, a.decl, a.importer, nil)
			if r != nil {
				out := cmd.OutOrStdout()
				for _, e := range r.Errors {
					fmt.Fprintf(out, "FAIL\t%v\n", e)
				}
				fmt.Fprintf(out, "checked %d symbols in %d submodules, %d problems\n", r.Symbols, r.Submodules, len(r.Errors))
			}
			return err
		},
	}
}
