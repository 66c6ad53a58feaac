package sample

import (
	"math"
	"time"

	"github.com/jaswdr/faker"

	"github.com/i474232898/dailycart/internal/estimate"
)

// Generator produces plausible demo sales history for the tracked items.
type Generator struct {
	fake faker.Faker
}

// NewGenerator creates a Generator backed by faker.
func NewGenerator() *Generator {
	return &Generator{fake: faker.New()}
}

// Sales returns one record per day for the `days` days ending on end,
// oldest first. Each tracked item sells between 1 and 6 kg.
func (g *Generator) Sales(days int, end time.Time) []estimate.SalesRecord {
	if days <= 0 {
		return nil
	}

	records := make([]estimate.SalesRecord, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)

		rec := estimate.SalesRecord{
			Date:          day.Format(time.DateOnly),
			CustomerCount: g.fake.IntBetween(15, 80),
		}
		for _, name := range estimate.TrackedItems() {
			price, _ := estimate.BasePrice(name)
			qty := math.Min(6, math.Max(1, g.fake.Float64(1, 1, 6)))
			sale := estimate.ItemSale{
				Name:     name,
				Quantity: qty,
				Revenue:  math.Round(qty * price),
			}
			rec.Items = append(rec.Items, sale)
			rec.TotalRevenue += sale.Revenue
		}
		records = append(records, rec)
	}
	return records
}
