package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func routesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the routes of a table",
		Long: `List every route of a table with its full pattern, in match order:
literal segments sorted by key, then the param segment.

Examples:
  wayfarer routes -f routes.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.loadRouter()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rt := range r.Routes() {
				fmt.Fprintln(out, rt.Pattern)
			}
			return nil
		},
	}
}
