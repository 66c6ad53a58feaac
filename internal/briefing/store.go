package briefing

import (
	"time"

	"github.com/i474232898/dailycart/internal/estimate"
)

// Store is the contract the in-memory store (and any future persistent store) must satisfy.
type Store interface {
	SaveBriefing(m Market, b Briefing)
	GetLatest(m Market) (Briefing, error)
	GetRange(m Market, from, to time.Time) ([]Briefing, error)

	AddSales(m Market, rec estimate.SalesRecord)
	RecentSales(m Market, n int) []estimate.SalesRecord
}
