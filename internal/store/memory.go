package store

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/i474232898/dailycart/internal/briefing"
	"github.com/i474232898/dailycart/internal/estimate"
)

var (
	// ErrNotFound is returned when no briefing is available for a given market.
	ErrNotFound = errors.New("no briefing for market")
)

// marketHistory holds what the store knows about one market.
type marketHistory struct {
	briefings []briefing.Briefing // ordered by GeneratedAt
	sales     []estimate.SalesRecord
}

// MemoryStore is a concurrency-safe in-memory implementation of briefing.Store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: market key
	data map[string]*marketHistory

	// retention configuration
	maxHistory int           // max number of briefings (and sales records) per market
	maxAge     time.Duration // optional max age for briefings
	now        func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*marketHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

func (s *MemoryStore) history(m briefing.Market) *marketHistory {
	key := m.Key()
	h, ok := s.data[key]
	if !ok {
		h = &marketHistory{}
		s.data[key] = h
	}
	return h
}

// SaveBriefing appends a new briefing for a market and enforces retention.
func (s *MemoryStore) SaveBriefing(m briefing.Market, b briefing.Briefing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.history(m)
	h.briefings = append(h.briefings, b)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(h.briefings) > s.maxHistory {
		over := len(h.briefings) - s.maxHistory
		h.briefings = h.briefings[over:]
	}

	// Enforce retention by age. The newest briefing is always kept.
	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		i := 0
		for ; i < len(h.briefings)-1; i++ {
			if !h.briefings[i].GeneratedAt.Before(cutoff) {
				break
			}
		}
		h.briefings = h.briefings[i:]
	}
}

// GetLatest returns the most recent briefing for a market.
func (s *MemoryStore) GetLatest(m briefing.Market) (briefing.Briefing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.data[m.Key()]
	if !ok || len(h.briefings) == 0 {
		return briefing.Briefing{}, ErrNotFound
	}
	return h.briefings[len(h.briefings)-1], nil
}

// GetRange returns all briefings for a market generated between from and to (inclusive).
func (s *MemoryStore) GetRange(m briefing.Market, from, to time.Time) ([]briefing.Briefing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.data[m.Key()]
	if !ok || len(h.briefings) == 0 {
		return nil, ErrNotFound
	}

	var result []briefing.Briefing
	for _, b := range h.briefings {
		if !b.GeneratedAt.Before(from) && !b.GeneratedAt.After(to) {
			result = append(result, b)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}

// AddSales appends a sales record for a market. Only the newest maxHistory
// records are kept.
func (s *MemoryStore) AddSales(m briefing.Market, rec estimate.SalesRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.history(m)
	h.sales = append(h.sales, rec)
	if s.maxHistory > 0 && len(h.sales) > s.maxHistory {
		h.sales = h.sales[len(h.sales)-s.maxHistory:]
	}
}

// RecentSales returns up to n of the newest sales records for a market,
// oldest first. A nil result means nothing has been recorded.
func (s *MemoryStore) RecentSales(m briefing.Market, n int) []estimate.SalesRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.data[m.Key()]
	if !ok || len(h.sales) == 0 || n <= 0 {
		return nil
	}
	if n > len(h.sales) {
		n = len(h.sales)
	}
	return slices.Clone(h.sales[len(h.sales)-n:])
}
