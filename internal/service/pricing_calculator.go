// Package service contains the business logic for the tour service.
package service

import (
	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/domain/model"
)

// PricingCalculator prices a quote for a named package.
type PricingCalculator interface {
	// Calculate fails with catalog.ErrInvalidPackageSelection when the name
	// has no backing package; no partial result is returned in that case.
	Calculate(packageName string, groupSize, marginPercent int) (model.PricingResult, error)
	// Catalog exposes the packages the calculator prices from.
	Catalog() *catalog.Catalog
}

// Option configures a PricingCalculatorService.
type Option func(*PricingCalculatorService)

// PricingCalculatorService implements PricingCalculator on top of a read-only catalog.
// It holds no mutable state, so one instance serves any number of goroutines.
type PricingCalculatorService struct {
	catalog *catalog.Catalog
}

// NewPricingCalculatorService creates a calculator backed by the default catalog
// unless WithCatalog is given.
func NewPricingCalculatorService(opts ...Option) *PricingCalculatorService {
	s := &PricingCalculatorService{}

	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	return s
}

// WithCatalog sets the catalog packages are looked up in.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *PricingCalculatorService) {
		if c != nil {
			s.catalog = c
		}
	}
}

// Calculate looks the package up by exact name and applies the pricing formula.
func (s *PricingCalculatorService) Calculate(packageName string, groupSize, marginPercent int) (model.PricingResult, error) {
	pkg, err := s.catalog.Lookup(packageName)
	if err != nil {
		return model.PricingResult{}, err
	}
	return model.ComputePricing(pkg, groupSize, marginPercent), nil
}

// Catalog returns the underlying catalog.
func (s *PricingCalculatorService) Catalog() *catalog.Catalog {
	return s.catalog
}
