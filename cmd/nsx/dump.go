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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/nsx/manifest"
)

func newDumpCmd(a *app) *cobra.Command {
	var (
		format string
		state  bool
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the declaration or the namespace state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if state {
				ns, err := a.namespace()
				if err != nil {
					return err
				}
				return enc.Encode(ns.State())
			}

			switch format {
			case "yaml":
				return manifest.Encode(out, a.decl)
			case "json":
				return enc.Encode(a.decl)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&state, "state", false, "print the namespace state as JSON instead of the declaration")
	return cmd
}
