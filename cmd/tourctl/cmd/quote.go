package cmd

import (
	"fmt"

	"github.com/guttosm/tour-service/internal/domain/dto"
	"github.com/guttosm/tour-service/internal/service"
	"github.com/spf13/cobra"
)

type quoteOptions struct {
	*rootOptions
	packageName   string
	groupSize     int
	marginPercent int
	format        string
}

func newQuoteCmd(root *rootOptions) *cobra.Command {
	opts := &quoteOptions{rootOptions: root}

	c := &cobra.Command{
		Use:   "quote",
		Short: "Price a package for a group size and margin",
		Long: `Compute per-person and group totals for one package.

The sell price per person is rounded to the nearest 10.

Examples:
  tourctl quote --package Budget
  tourctl quote -p Luxury -g 12 -m 30 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, opts)
		},
	}

	c.Flags().StringVarP(&opts.packageName, "package", "p", "", "package name [REQUIRED]")
	c.Flags().IntVarP(&opts.groupSize, "group-size", "g", root.pricing.DefaultGroupSize, "number of travellers")
	c.Flags().IntVarP(&opts.marginPercent, "margin", "m", root.pricing.DefaultMarginPercent, "margin percent")
	c.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json)")
	_ = c.MarkFlagRequired("package")

	return c
}

func runQuote(cmd *cobra.Command, opts *quoteOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	c, err := opts.loadCatalog()
	if err != nil {
		return err
	}

	calc := service.NewPricingCalculatorService(service.WithCatalog(c))
	result, err := calc.Calculate(opts.packageName, opts.groupSize, opts.marginPercent)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, c.Names())
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		return writeJSON(out, dto.NewQuoteResponse(result))
	}

	tw := newTable(out)
	fmt.Fprintf(tw, "Package\t%s\n", result.PackageName)
	fmt.Fprintf(tw, "Group size\t%d\n", result.GroupSize)
	fmt.Fprintf(tw, "Margin\t%d%%\n", result.MarginPercent)
	fmt.Fprintf(tw, "Cost per person\t%s\n", result.CostPerPerson.String())
	fmt.Fprintf(tw, "Sell price per person\t%s\n", result.SellPricePerPerson.String())
	fmt.Fprintf(tw, "Profit per person\t%s\n", result.ProfitPerPerson().String())
	fmt.Fprintf(tw, "Total cost\t%s\n", result.TotalCost.String())
	fmt.Fprintf(tw, "Total revenue\t%s\n", result.TotalRevenue.String())
	fmt.Fprintf(tw, "Total profit\t%s\n", result.TotalProfit.String())
	return tw.Flush()
}
