package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/wayfarer/core/router"
)

func matchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match PATH",
		Short: "Resolve a path against a table",
		Long: `Resolve PATH against a table and print the response it produces
as JSON. The default route of the table is used when PATH has no handler.

Examples:
  wayfarer match -f routes.yaml /users/42
  wayfarer match /files/docs/read%20me.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: path", router.ErrMissingArgument)
			}

			r, err := a.loadRouter()
			if err != nil {
				return err
			}

			resp, err := r.Dispatch(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
}
