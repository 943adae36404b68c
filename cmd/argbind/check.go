// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/argbind/pkg/argspec"
	"github.com/invowk/argbind/pkg/diag"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <schema>",
		Short: "Validate a schema file and print its usage lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := a.loadSchema(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, successStyle.Render("✓ ")+args[0]+": schema is valid")
			schema.Walk(func(path []string, sc *argspec.Schema) {
				line := cmdStyle.Render(strings.TrimPrefix(diag.Usage(schema, path), "usage: "))
				if sc.Description != "" {
					line += subtitleStyle.Render("  # " + sc.Description)
				}
				fmt.Fprintln(out, "  "+line)
			})
			return nil
		},
	}
}
