// Package app provides service initialization.
package app

import (
	"context"
	"fmt"

	"github.com/guttosm/tour-service/config"
	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/metrics"
	"github.com/guttosm/tour-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog    *catalog.Catalog
	Calculator service.PricingCalculator
	Comparison service.ComparisonService
	Defaults   service.PricingDefaults
}

// LoadSeedCatalog returns the catalog from cfg.CatalogFile, or the built-in
// packages when no file is configured.
func LoadSeedCatalog(cfg config.PricingConfig) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}

	c, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogFile, err)
	}

	log.Info().Str("file", cfg.CatalogFile).Int("packages", c.Len()).Msg("Loaded catalog seed file")
	return c, nil
}

// InitializeServices builds the catalog and the pricing services. With a
// database the stored catalog wins; if it cannot be read the seed is used.
func InitializeServices(cfg config.PricingConfig, db *DatabaseComponents) (*ServiceComponents, error) {
	seed, err := LoadSeedCatalog(cfg)
	if err != nil {
		return nil, err
	}

	active := seed
	if db != nil {
		stored, err := LoadStoredCatalog(context.Background(), db.TourPackagesRepo, seed)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to load stored catalog - using seed")
		} else {
			active = stored
		}
	}

	metrics.SetCatalogSize(active.Len())

	return &ServiceComponents{
		Catalog:    active,
		Calculator: service.NewPricingCalculatorService(service.WithCatalog(active)),
		Comparison: service.NewComparisonService(active),
		Defaults:   pricingDefaults(cfg),
	}, nil
}

// pricingDefaults takes the calculator defaults from cfg as given; config.Load
// always fills them, and zero is a valid margin.
func pricingDefaults(cfg config.PricingConfig) service.PricingDefaults {
	d := service.DefaultPricingDefaults()
	d.GroupSize = cfg.DefaultGroupSize
	d.MarginPercent = cfg.DefaultMarginPercent
	return d
}
