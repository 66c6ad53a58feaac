package estimate

import (
	"math"
	"sort"
)

const (
	bulkDiscountThreshold = 500.0
	bulkDiscountRate      = 0.1
)

// CalculateGroupBuySavings prices items at each supplier and ranks the
// suppliers by how much the vendor saves against the items' own prices.
//
// Items a supplier does not list keep their own price. Orders costing more
// than 500 get a further 10% off, which is also counted as savings.
func CalculateGroupBuySavings(suppliers []SupplierRecord, items []StockItem) []GroupBuyResult {
	results := make([]GroupBuyResult, 0, len(suppliers))

	for _, sup := range suppliers {
		var totalCost, savings float64

		for _, it := range items {
			price := supplierPrice(sup, it)
			regularCost := it.PricePerUnit * it.Quantity
			supplierCost := price * it.Quantity

			totalCost += supplierCost
			savings += regularCost - supplierCost
		}

		if totalCost > bulkDiscountThreshold {
			discount := totalCost * bulkDiscountRate
			savings += discount
			totalCost -= discount
		}

		results = append(results, GroupBuyResult{
			Supplier:  sup,
			Savings:   roundHalfUp(savings),
			TotalCost: roundHalfUp(totalCost),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Savings > results[j].Savings
	})
	return results
}

// supplierPrice treats an unlisted or zero price as "not offered".
func supplierPrice(sup SupplierRecord, it StockItem) float64 {
	if p, ok := sup.Prices[it.Name]; ok && p != 0 {
		return p
	}
	return it.PricePerUnit
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf,
// so -2.5 becomes -2. Values outside the int range saturate; NaN is 0.
func roundHalfUp(v float64) int {
	r := math.Floor(v + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= float64(math.MaxInt):
		return math.MaxInt
	case r <= float64(math.MinInt):
		return math.MinInt
	}
	return int(r)
}
