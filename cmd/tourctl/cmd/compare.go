package cmd

import (
	"fmt"

	"github.com/guttosm/tour-service/internal/domain/dto"
	"github.com/guttosm/tour-service/internal/service"
	"github.com/spf13/cobra"
)

func newCompareCmd(root *rootOptions) *cobra.Command {
	var (
		margin int
		format string
	)

	c := &cobra.Command{
		Use:   "compare",
		Short: "Show the package comparison table",
		Long: `Compare every package at its base group size.

Examples:
  tourctl compare
  tourctl compare --margin 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			cat, err := root.loadCatalog()
			if err != nil {
				return err
			}

			rows := service.NewComparisonService(cat).Compare(margin)

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, dto.NewComparisonResponse(rows))
			}

			tw := newTable(out)
			fmt.Fprintf(tw, "PACKAGE\tGROUP\tTOTAL COST\tCOST/PERSON\tSELL/PERSON @%d%%\tGROUP PROFIT\n", margin)
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
					r.Package.Name,
					r.Package.BaseGroupSize,
					r.TotalCost.String(),
					r.CostPerPerson.String(),
					r.SellPricePerPerson.String(),
					r.GroupProfit.String(),
				)
			}
			return tw.Flush()
		},
	}

	c.Flags().IntVarP(&margin, "margin", "m", root.pricing.DefaultMarginPercent, "margin percent")
	c.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json)")
	return c
}
