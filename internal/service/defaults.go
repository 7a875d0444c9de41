package service

// PricingDefaults are the calculator's initial values and the ranges the UI
// hints at. The pricing formula does not enforce these ranges.
type PricingDefaults struct {
	GroupSize     int `json:"group_size" example:"10"`
	MarginPercent int `json:"margin_percent" example:"25"`
	GroupSizeMin  int `json:"group_size_min" example:"4"`
	GroupSizeMax  int `json:"group_size_max" example:"30"`
	MarginMin     int `json:"margin_min" example:"10"`
	MarginMax     int `json:"margin_max" example:"40"`
} // @name PricingDefaults

// DefaultPricingDefaults returns the values the tour page shipped with.
func DefaultPricingDefaults() PricingDefaults {
	return PricingDefaults{
		GroupSize:     10,
		MarginPercent: 25,
		GroupSizeMin:  4,
		GroupSizeMax:  30,
		MarginMin:     10,
		MarginMax:     40,
	}
}
