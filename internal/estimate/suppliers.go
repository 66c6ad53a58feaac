package estimate

import (
	"maps"
	"slices"
)

var supplierCatalog = []SupplierRecord{
	{
		Name:     "Raja Wholesale",
		Location: "Gandhipuram, Coimbatore",
		Distance: "500m",
		Items:    []string{"Tomato", "Onion", "Potato", "Carrot"},
		Prices: map[string]float64{
			"Tomato": 38,
			"Onion":  42,
			"Potato": 28,
			"Carrot": 45,
		},
		Rating: 4.5,
		Phone:  "+91 98765 43210",
	},
	{
		Name:     "A1 Veg Mart",
		Location: "RS Puram, Coimbatore",
		Distance: "800m",
		Items:    []string{"Tomato", "Onion", "Potato", "Cabbage"},
		Prices: map[string]float64{
			"Tomato":  40,
			"Onion":   45,
			"Potato":  30,
			"Cabbage": 35,
		},
		Rating: 4.2,
		Phone:  "+91 98765 43211",
	},
	{
		Name:     "Fresh Farm Direct",
		Location: "Peelamedu, Coimbatore",
		Distance: "1.2km",
		Items:    []string{"Tomato", "Onion", "Potato", "Beans"},
		Prices: map[string]float64{
			"Tomato": 35,
			"Onion":  40,
			"Potato": 25,
			"Beans":  50,
		},
		Rating: 4.7,
		Phone:  "+91 98765 43212",
	},
}

// FindNearbySuppliers returns the supplier catalog for a market.
//
// The catalog is fixed and location is not consulted yet. Each call returns
// its own copy.
func FindNearbySuppliers(location string) []SupplierRecord {
	out := make([]SupplierRecord, 0, len(supplierCatalog))
	for _, s := range supplierCatalog {
		s.Items = slices.Clone(s.Items)
		s.Prices = maps.Clone(s.Prices)
		out = append(out, s)
	}
	return out
}
