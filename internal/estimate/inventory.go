package estimate

import (
	"math"
	"time"
)

const (
	defaultDailySales = 2.0
	localMarket       = "Local Market"

	// JavaScript-style ISO timestamp with millisecond precision.
	lastOrderLayout = "2006-01-02T15:04:05.000Z07:00"
)

type baseItem struct {
	name  string
	unit  string
	price float64
}

// trackedItems are the produce items every plan reports on, in order.
var trackedItems = []baseItem{
	{name: "Tomato", unit: "kg", price: 40},
	{name: "Onion", unit: "kg", price: 35},
	{name: "Potato", unit: "kg", price: 25},
}

// TrackedItems returns the names of the items InventoryNeeds reports on.
func TrackedItems() []string {
	names := make([]string, 0, len(trackedItems))
	for _, it := range trackedItems {
		names = append(names, it.name)
	}
	return names
}

// BasePrice returns the local-market price of a tracked item.
func BasePrice(name string) (float64, bool) {
	for _, it := range trackedItems {
		if it.name == name {
			return it.price, true
		}
	}
	return 0, false
}

// IsWeekend reports whether dayOfWeek (0 = Sunday) falls on a weekend.
func IsWeekend(dayOfWeek int) bool {
	return dayOfWeek == int(time.Sunday) || dayOfWeek == int(time.Saturday)
}

// InventoryNeeds recommends how much of each tracked item to buy, scaling the
// historical daily average by weekend and weather multipliers.
func (e *Estimator) InventoryNeeds(history []SalesRecord, w WeatherReading, dayOfWeek int) []StockItem {
	isWeekend := IsWeekend(dayOfWeek)
	isRaining := w.Raining()
	isHot := w.Hot()
	orderedAt := e.now().UTC().Format(lastOrderLayout)

	items := make([]StockItem, 0, len(trackedItems))
	for _, base := range trackedItems {
		multiplier := 1.0
		if isWeekend {
			multiplier *= 1.3
		}
		if isRaining {
			if base.name == "Potato" {
				multiplier *= 1.5
			} else {
				multiplier *= 0.8
			}
		}
		if isHot {
			if base.name == "Tomato" {
				multiplier *= 1.2
			} else {
				multiplier *= 0.9
			}
		}

		qty := math.Round(AverageDailySales(history, base.name)*multiplier*10) / 10

		items = append(items, StockItem{
			Name:          base.name,
			Quantity:      math.Max(0, qty),
			Unit:          base.unit,
			PricePerUnit:  base.price,
			Supplier:      localMarket,
			LastOrderDate: orderedAt,
		})
	}
	return items
}

// AverageDailySales averages the quantity sold of name across history. Days
// without the item count as zero. An empty history yields the default of 2.
func AverageDailySales(history []SalesRecord, name string) float64 {
	if len(history) == 0 {
		return defaultDailySales
	}

	var sum float64
	for _, rec := range history {
		for _, sale := range rec.Items {
			if sale.Name == name {
				sum += sale.Quantity
				break
			}
		}
	}
	return sum / float64(len(history))
}

// PlanCost prices a stock plan at each item's own unit price.
func PlanCost(items []StockItem) float64 {
	var total float64
	for _, it := range items {
		total += it.PricePerUnit * it.Quantity
	}
	return total
}
