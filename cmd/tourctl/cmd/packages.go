package cmd

import (
	"fmt"

	"github.com/guttosm/tour-service/internal/domain/dto"
	"github.com/spf13/cobra"
)

func newPackagesCmd(root *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "packages",
		Short: "List the packages in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			cat, err := root.loadCatalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, dto.NewPackageResponses(cat.Packages()))
			}

			tw := newTable(out)
			fmt.Fprintln(tw, "NAME\tTITLE\tBASE GROUP\tTOTAL COST\tCOST/PERSON")
			for _, p := range cat.Packages() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
					p.Name, p.Title, p.BaseGroupSize, p.TotalCostAtBaseGroupSize, p.CostPerPerson().String())
			}
			return tw.Flush()
		},
	}

	c.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json)")
	return c
}
