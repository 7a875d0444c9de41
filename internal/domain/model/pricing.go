package model

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places costs are kept to.
const MoneyScale int32 = 2

var (
	hundred = decimal.NewFromInt(100)
	// priceStep is the granularity sell prices are rounded to.
	priceStep = decimal.NewFromInt(10)
)

// PricingResult holds the amounts derived for one quote.
// It is recomputed for every request and never stored.
type PricingResult struct {
	PackageName        string
	GroupSize          int
	MarginPercent      int
	CostPerPerson      decimal.Decimal
	SellPricePerPerson decimal.Decimal
	TotalRevenue       decimal.Decimal
	TotalCost          decimal.Decimal
	TotalProfit        decimal.Decimal
}

// ComputePricing applies the pricing formula to a package.
//
// The sell price is rounded to the nearest multiple of 10, with exact halves
// rounded away from zero. Costs are kept to MoneyScale places and derived
// from the reference total, so a base group always costs exactly that total.
// Group size and margin are used as given: zero travellers yields zero
// totals, negative values produce negative totals, and a negative margin
// prices below cost.
func ComputePricing(pkg TourPackage, groupSize, marginPercent int) PricingResult {
	travellers := decimal.NewFromInt(int64(groupSize))

	// total * (100 + margin) / (100 * base), divided once at the end
	markup := hundred.Add(decimal.NewFromInt(int64(marginPercent)))
	rawSell := decimal.NewFromInt(pkg.TotalCostAtBaseGroupSize).Mul(markup).
		Div(decimal.NewFromInt(int64(pkg.BaseGroupSize)).Mul(hundred))
	sellPerPerson := RoundToPriceStep(rawSell)

	totalCost := pkg.costFor(groupSize)
	totalRevenue := sellPerPerson.Mul(travellers)

	return PricingResult{
		PackageName:        pkg.Name,
		GroupSize:          groupSize,
		MarginPercent:      marginPercent,
		CostPerPerson:      pkg.CostPerPerson(),
		SellPricePerPerson: sellPerPerson,
		TotalRevenue:       totalRevenue,
		TotalCost:          totalCost,
		TotalProfit:        totalRevenue.Sub(totalCost),
	}
}

// RoundToPriceStep rounds an amount to the nearest multiple of 10.
// Ties go away from zero: 2715 becomes 2720 and -2715 becomes -2720.
func RoundToPriceStep(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(priceStep).Round(0).Mul(priceStep)
}

// ProfitPerPerson is the margin earned on each traveller.
func (r PricingResult) ProfitPerPerson() decimal.Decimal {
	return r.SellPricePerPerson.Sub(r.CostPerPerson)
}
