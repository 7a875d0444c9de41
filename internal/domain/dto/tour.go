package dto

import (
	"github.com/guttosm/tour-service/internal/domain/model"
)

// QuoteResponse is a priced quote. Amounts are serialised as JSON numbers;
// sell prices are multiples of 10 and costs carry at most two decimals.
//
// @Description Price quote for a package, group size and margin
type QuoteResponse struct {
	Package            string  `json:"package" example:"Budget"`
	GroupSize          int     `json:"group_size" example:"10"`
	MarginPercent      int     `json:"margin_percent" example:"25"`
	CostPerPerson      float64 `json:"cost_per_person" example:"2170"`
	SellPricePerPerson float64 `json:"sell_price_per_person" example:"2710"`
	ProfitPerPerson    float64 `json:"profit_per_person" example:"540"`
	TotalCost          float64 `json:"total_cost" example:"21700"`
	TotalRevenue       float64 `json:"total_revenue" example:"27100"`
	TotalProfit        float64 `json:"total_profit" example:"5400"`
} // @name QuoteResponse

// NewQuoteResponse converts a pricing result for the wire.
func NewQuoteResponse(r model.PricingResult) QuoteResponse {
	return QuoteResponse{
		Package:            r.PackageName,
		GroupSize:          r.GroupSize,
		MarginPercent:      r.MarginPercent,
		CostPerPerson:      r.CostPerPerson.InexactFloat64(),
		SellPricePerPerson: r.SellPricePerPerson.InexactFloat64(),
		ProfitPerPerson:    r.ProfitPerPerson().InexactFloat64(),
		TotalCost:          r.TotalCost.InexactFloat64(),
		TotalRevenue:       r.TotalRevenue.InexactFloat64(),
		TotalProfit:        r.TotalProfit.InexactFloat64(),
	}
}

// PackageResponse is a catalog entry with its derived per-person cost.
// @Description Tour package with descriptive attributes
type PackageResponse struct {
	model.TourPackage
	CostPerPerson float64 `json:"cost_per_person" example:"2170"`
} // @name PackageResponse

// NewPackageResponse converts a catalog entry for the wire.
func NewPackageResponse(p model.TourPackage) PackageResponse {
	return PackageResponse{
		TourPackage:   p,
		CostPerPerson: p.CostPerPerson().InexactFloat64(),
	}
}

// NewPackageResponses converts a list, keeping order.
func NewPackageResponses(pkgs []model.TourPackage) []PackageResponse {
	out := make([]PackageResponse, len(pkgs))
	for i, p := range pkgs {
		out[i] = NewPackageResponse(p)
	}
	return out
}

// ComparisonRowResponse is one column of the comparison table.
// @Description Package figures at its base group size
type ComparisonRowResponse struct {
	Package            PackageResponse `json:"package"`
	GroupSize          int             `json:"group_size" example:"10"`
	MarginPercent      int             `json:"margin_percent" example:"25"`
	TotalCost          float64         `json:"total_cost" example:"21700"`
	CostPerPerson      float64         `json:"cost_per_person" example:"2170"`
	SellPricePerPerson float64         `json:"sell_price_per_person" example:"2710"`
	GroupProfit        float64         `json:"group_profit" example:"5400"`
} // @name ComparisonRowResponse

// NewComparisonResponse converts the comparison table for the wire.
func NewComparisonResponse(rows []model.PackageComparison) []ComparisonRowResponse {
	out := make([]ComparisonRowResponse, len(rows))
	for i, r := range rows {
		out[i] = ComparisonRowResponse{
			Package:            NewPackageResponse(r.Package),
			GroupSize:          r.Package.BaseGroupSize,
			MarginPercent:      r.MarginPercent,
			TotalCost:          r.TotalCost.InexactFloat64(),
			CostPerPerson:      r.CostPerPerson.InexactFloat64(),
			SellPricePerPerson: r.SellPricePerPerson.InexactFloat64(),
			GroupProfit:        r.GroupProfit.InexactFloat64(),
		}
	}
	return out
}
