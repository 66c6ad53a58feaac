package estimate

// Condition represents the coarse weather condition a vendor plans around.
type Condition string

const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionRainy  Condition = "rainy"
)

// WeatherReading is a synthetic weather estimate for a single day.
type WeatherReading struct {
	Condition   Condition `json:"condition" validate:"required,oneof=sunny cloudy rainy"`
	Temperature float64   `json:"temperature"` // °C
	Humidity    float64   `json:"humidity"`    // percent
}

// Raining reports whether the reading calls for rain.
func (w WeatherReading) Raining() bool {
	return w.Condition == ConditionRainy
}

// Hot reports whether the reading is above the hot-day threshold.
func (w WeatherReading) Hot() bool {
	return w.Temperature > hotThresholdC
}

// ItemSale is the quantity of one item sold on a given day.
type ItemSale struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0,lte=100000"`
	Revenue  float64 `json:"revenue" validate:"gte=0,lte=10000000"`
}

// SalesRecord is one day of a vendor's sales.
type SalesRecord struct {
	Date          string     `json:"date"`
	Items         []ItemSale `json:"items" validate:"dive"`
	TotalRevenue  float64    `json:"totalRevenue"`
	CustomerCount int        `json:"customerCount"`
}

// StockItem is a recommended purchase for one produce item.
type StockItem struct {
	Name          string  `json:"name" validate:"required"`
	Quantity      float64 `json:"currentStock" validate:"gte=0,lte=100000"`
	Unit          string  `json:"unit"`
	PricePerUnit  float64 `json:"pricePerUnit" validate:"gte=0,lte=100000"`
	Supplier      string  `json:"supplier"`
	LastOrderDate string  `json:"lastOrderDate"`
}

// SupplierRecord describes a wholesale supplier and its price list.
type SupplierRecord struct {
	Name     string             `json:"name"`
	Location string             `json:"location"`
	Distance string             `json:"distance"`
	Items    []string           `json:"items"`
	Prices   map[string]float64 `json:"prices"`
	Rating   float64            `json:"rating"`
	Phone    string             `json:"phone"`
}

// GroupBuyResult is the outcome of buying a stock plan from one supplier.
type GroupBuyResult struct {
	Supplier  SupplierRecord `json:"supplier"`
	Savings   int            `json:"savings"`
	TotalCost int            `json:"totalCost"`
}
