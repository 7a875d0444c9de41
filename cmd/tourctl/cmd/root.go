// Package cmd provides the CLI commands for tourctl.
package cmd

import (
	"os"

	"github.com/guttosm/tour-service/config"
	"github.com/guttosm/tour-service/internal/app"
	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/logger"
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	catalogFile string
	verbose     bool
	pricing     config.PricingConfig
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	cfg := o.pricing
	cfg.CatalogFile = o.catalogFile
	return app.LoadSeedCatalog(cfg)
}

// NewRootCmd builds the command tree. Defaults for group size and margin
// come from the same environment variables the server reads.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{pricing: config.Load().Pricing}

	root := &cobra.Command{
		Use:   "tourctl",
		Short: "Price Bangkok - Ayutthaya tour packages",
		Long: `tourctl prices the two-day Ayutthaya tour from the command line.

It uses the same catalog and pricing formula as the HTTP service.

Examples:
  tourctl packages
  tourctl quote --package Budget --group-size 10 --margin 25
  tourctl quote -p Luxury --format json
  tourctl compare --margin 30 --catalog ./catalog.yaml`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logger.InitWithWriter(os.Stderr, level, true)
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogFile, "catalog", opts.pricing.CatalogFile, "YAML catalog seed file (default is the built-in packages)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newQuoteCmd(opts))
	root.AddCommand(newPackagesCmd(opts))
	root.AddCommand(newCompareCmd(opts))

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
