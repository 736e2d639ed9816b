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
)

func newHasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "has NAME",
		Short: "Exit 0 if NAME is exported, 1 otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := a.namespace()
			if err != nil {
				return err
			}
			if !ns.Has(args[0]) {
				return errAbsent
			}
			return nil
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Resolve NAME, importing its submodule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := a.namespace()
			if err != nil {
				return err
			}
			v, err := ns.Get(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}
			_, err = fmt.Fprintf(out, "%s\t%T\t%v\n", args[0], v, v)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the value as JSON")
	return cmd
}

func newSubmodulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "submodules",
		Short: "List exported submodules and their backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns, err := a.namespace()
			if err != nil {
				return err
			}
			tbl := ns.Table()
			out := cmd.OutOrStdout()
			for _, sub := range ns.Submodules() {
				d, _ := tbl.Descriptor(sub)
				fmt.Fprintf(out, "%s\t%s\t%d\n", sub, d.Backend, len(d.Symbols))
			}
			return nil
		},
	}
}
