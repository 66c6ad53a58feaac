package briefing

import (
	"strings"
	"time"

	"github.com/i474232898/dailycart/internal/estimate"
)

// Market identifies the place a vendor trades from, e.g. "Gandhipuram, Coimbatore".
type Market string

// Key returns a canonical string key for indexing this market in stores.
func (m Market) Key() string {
	return strings.ToLower(strings.Join(strings.Fields(string(m)), " "))
}

// Briefing is the daily planning view generated for a market.
type Briefing struct {
	ID          string                   `json:"id"`
	Market      Market                   `json:"market"`
	GeneratedAt time.Time                `json:"generatedAt"` // always UTC
	DayOfWeek   int                      `json:"dayOfWeek"`
	DayName     string                   `json:"dayNameTamil"`
	Greeting    string                   `json:"greeting"`
	Weather     estimate.WeatherReading  `json:"weather"`
	Items       []estimate.StockItem     `json:"items"`
	PlanCost    string                   `json:"estimatedCost"`
	BestDeal    *estimate.GroupBuyResult `json:"bestDeal,omitempty"`
}

// Plan is an unsaved stock recommendation.
type Plan struct {
	Weather   estimate.WeatherReading `json:"weather"`
	DayOfWeek int                     `json:"dayOfWeek"`
	Items     []estimate.StockItem    `json:"items"`
	PlanCost  string                  `json:"estimatedCost"`
}
