package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strata-web/strata/examples/site"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the demo site's routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := site.Routes()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATTERN\tTITLE")
			for _, r := range table.Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Method, r.Pattern, r.Title)
			}
			return w.Flush()
		},
	}
}
