// Package model defines the core domain entities for the tour service.
package model

import "github.com/shopspring/decimal"

// TourPackage is a priced tier of the tour.
// Only BaseGroupSize and TotalCostAtBaseGroupSize take part in pricing;
// the remaining attributes are shown to travellers as-is.
//
// @Description Tour package tier with its reference cost and what it includes
type TourPackage struct {
	// Name identifies the tier and is unique within a catalog
	Name string `json:"name" bson:"name" yaml:"name" example:"Budget"`
	// Title is the display label
	Title string `json:"title" bson:"title" yaml:"title" example:"Budget Package"`
	// BaseGroupSize is the traveller count the total cost was priced for
	BaseGroupSize int `json:"base_group_size" bson:"base_group_size" yaml:"base_group_size" example:"10"`
	// TotalCostAtBaseGroupSize is the cost of running the tour for BaseGroupSize travellers
	TotalCostAtBaseGroupSize int64 `json:"total_cost_at_base_group_size" bson:"total_cost_at_base_group_size" yaml:"total_cost_at_base_group_size" example:"21700"`

	Transport    string `json:"transport,omitempty" bson:"transport,omitempty" yaml:"transport,omitempty"`
	Lodging      string `json:"lodging,omitempty" bson:"lodging,omitempty" yaml:"lodging,omitempty"`
	Meals        string `json:"meals,omitempty" bson:"meals,omitempty" yaml:"meals,omitempty"`
	Cafes        string `json:"cafes,omitempty" bson:"cafes,omitempty" yaml:"cafes,omitempty"`
	Guide        string `json:"guide,omitempty" bson:"guide,omitempty" yaml:"guide,omitempty"`
	Insurance    string `json:"insurance,omitempty" bson:"insurance,omitempty" yaml:"insurance,omitempty"`
	EntranceFees string `json:"entrance_fees,omitempty" bson:"entrance_fees,omitempty" yaml:"entrance_fees,omitempty"`
}

// CostPerPerson returns the per-traveller cost implied by the reference total,
// rounded to MoneyScale places. The ratio is treated as constant for every
// group size.
func (p TourPackage) CostPerPerson() decimal.Decimal {
	return p.costFor(1)
}

// costFor returns the cost of running the tour for travellers people,
// multiplying before dividing so a whole base group costs exactly the
// reference total.
func (p TourPackage) costFor(travellers int) decimal.Decimal {
	return decimal.NewFromInt(p.TotalCostAtBaseGroupSize).
		Mul(decimal.NewFromInt(int64(travellers))).
		Div(decimal.NewFromInt(int64(p.BaseGroupSize))).
		Round(MoneyScale)
}
