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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/nsx/apis"
)

// listEntry is one row of `nsx list`.
type listEntry struct {
	Name      string `json:"name"`
	Submodule string `json:"submodule"`
	Backend   string `json:"backend,omitempty"`
	Available bool   `json:"available"`
}

func newListCmd(a *app) *cobra.Command {
	var (
		match   string
		asJSON  bool
		omitted bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exported names without importing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns, err := a.namespace()
			if err != nil {
				return err
			}

			names := ns.Names()
			if match != "" {
				if names, err = ns.Match(match); err != nil {
					return err
				}
			}

			tbl := ns.Table()
			entries := make([]listEntry, 0, len(names))
			for _, n := range names {
				d, _ := tbl.Lookup(n)
				entries = append(entries, entry(n, d, true))
			}
			if omitted {
				for _, g := range a.decl.Groups {
					for _, s := range g.Symbols {
						d, ok := tbl.Omitted(s)
						if !ok {
							continue
						}
						entries = append(entries, entry(s, d, false))
					}
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range entries {
				state := ""
				if !e.Available {
					state = "(unavailable)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Submodule, e.Backend, state)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "only names matching a glob, e.g. '*LogitsWarper'")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&omitted, "omitted", false, "also list names whose backend is unavailable")
	return cmd
}

func entry(name string, d *apis.Descriptor, available bool) listEntry {
	e := listEntry{Name: name, Available: available}
	if d != nil {
		e.Submodule = d.Submodule
		e.Backend = string(d.Backend)
	}
	return e
}
