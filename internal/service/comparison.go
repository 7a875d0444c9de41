package service

import (
	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/domain/model"
)

// ComparisonService builds the side-by-side package table.
type ComparisonService interface {
	Compare(marginPercent int) []model.PackageComparison
}

// ComparisonServiceImpl derives every table figure from the pricing formula,
// so the table always agrees with the calculator.
type ComparisonServiceImpl struct {
	catalog *catalog.Catalog
}

// NewComparisonService creates a comparison service over the catalog.
func NewComparisonService(c *catalog.Catalog) *ComparisonServiceImpl {
	return &ComparisonServiceImpl{catalog: c}
}

// Compare prices each package for its base group at the given margin.
func (s *ComparisonServiceImpl) Compare(marginPercent int) []model.PackageComparison {
	packages := s.catalog.Packages()
	rows := make([]model.PackageComparison, 0, len(packages))

	for _, pkg := range packages {
		r := model.ComputePricing(pkg, pkg.BaseGroupSize, marginPercent)
		rows = append(rows, model.PackageComparison{
			Package:            pkg,
			MarginPercent:      marginPercent,
			TotalCost:          r.TotalCost,
			CostPerPerson:      r.CostPerPerson,
			SellPricePerPerson: r.SellPricePerPerson,
			GroupProfit:        r.TotalProfit,
		})
	}
	return rows
}
