package model

import "github.com/shopspring/decimal"

// PackageComparison is one column of the package comparison table.
// Figures are computed for the package's base group size.
type PackageComparison struct {
	Package            TourPackage
	MarginPercent      int
	TotalCost          decimal.Decimal
	CostPerPerson      decimal.Decimal
	SellPricePerPerson decimal.Decimal
	GroupProfit        decimal.Decimal
}
