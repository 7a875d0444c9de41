package catalog

import "github.com/guttosm/tour-service/internal/domain/model"

// DefaultBaseGroupSize is the traveller count the seed costs were priced for.
const DefaultBaseGroupSize = 10

// DefaultPackages returns the seed tiers used when no other source is configured.
func DefaultPackages() []model.TourPackage {
	return []model.TourPackage{
		{
			Name:                     "Luxury",
			Title:                    "Luxury Package",
			BaseGroupSize:            DefaultBaseGroupSize,
			TotalCostAtBaseGroupSize: 32900,
			Transport:                "VIP van with fuel and driver",
			Lodging:                  "Riverside boutique hotel (Sala / iuDia)",
			Meals:                    "4 meals at well-known riverside restaurants (~250 per meal)",
			Cafes:                    "3 cafes: The Summer House / Busaba / Retreat",
			Guide:                    "Full-trip guide",
			Insurance:                "Accident insurance included",
			EntranceFees:             "Entrance to 4 temples",
		},
		{
			Name:                     "Budget",
			Title:                    "Budget Package",
			BaseGroupSize:            DefaultBaseGroupSize,
			TotalCostAtBaseGroupSize: 21700,
			Transport:                "Standard van with fuel",
			Lodging:                  "3-star hotel or quality hostel",
			Meals:                    "4 meals at local restaurants (~150 per meal)",
			Cafes:                    "2 cafes: The Summer House / Retreat",
			Guide:                    "Half-day guide",
			Insurance:                "Accident insurance included",
			EntranceFees:             "Entrance to 4 temples",
		},
	}
}

// Default builds the catalog from DefaultPackages.
func Default() *Catalog {
	c, err := New(DefaultPackages())
	if err != nil {
		panic("catalog: invalid default packages: " + err.Error())
	}
	return c
}
