package briefing

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/dailycart/internal/estimate"
)

// Settings tunes how a Service builds plans.
type Settings struct {
	// Location is the time zone used for month, weekday and greeting hour.
	Location *time.Location
	// SalesWindow is how many recent sales records feed a plan.
	SalesWindow int
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Service builds stock plans and briefings for markets and keeps their history.
type Service struct {
	store       Store
	estimator   *estimate.Estimator
	loc         *time.Location
	salesWindow int
	now         func() time.Time
}

// NewService creates a new Service.
func NewService(store Store, estimator *estimate.Estimator, cfg Settings) *Service {
	if estimator == nil {
		estimator = estimate.NewEstimator(nil, nil)
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.SalesWindow <= 0 {
		cfg.SalesWindow = 7
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		store:       store,
		estimator:   estimator,
		loc:         cfg.Location,
		salesWindow: cfg.SalesWindow,
		now:         cfg.Now,
	}
}

// PlanInput describes a plan request. Zero fields are filled in by the service.
type PlanInput struct {
	Market Market
	// At defaults to now.
	At time.Time
	// DayOfWeek defaults to the weekday of At.
	DayOfWeek *int
	// History defaults to the market's recent recorded sales when nil.
	History []estimate.SalesRecord
	// Weather defaults to an estimate for At.
	Weather *estimate.WeatherReading
}

// Now returns the service clock in the configured time zone.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// Weather estimates the weather for a market on the day of at.
func (s *Service) Weather(m Market, at time.Time) estimate.WeatherReading {
	return s.estimator.Weather(string(m), s.local(at))
}

// Greeting composes the greeting for a market at the given time.
func (s *Service) Greeting(m Market, at time.Time) (string, estimate.WeatherReading) {
	at = s.local(at)
	w := s.estimator.Weather(string(m), at)
	return estimate.FriendlyGreeting(at, w), w
}

// Plan computes a stock recommendation without saving anything.
func (s *Service) Plan(in PlanInput) Plan {
	at := s.local(in.At)

	w := in.Weather
	if w == nil {
		est := s.estimator.Weather(string(in.Market), at)
		w = &est
	}

	day := int(at.Weekday())
	if in.DayOfWeek != nil {
		day = *in.DayOfWeek
	}

	history := in.History
	if history == nil {
		history = s.store.RecentSales(in.Market, s.salesWindow)
	}

	items := s.estimator.InventoryNeeds(history, *w, day)
	return Plan{
		Weather:   *w,
		DayOfWeek: day,
		Items:     items,
		PlanCost:  estimate.FormatCurrency(estimate.PlanCost(items)),
	}
}

// Generate builds today's briefing for a market and stores it.
func (s *Service) Generate(ctx context.Context, m Market) (Briefing, error) {
	if err := ctx.Err(); err != nil {
		return Briefing{}, fmt.Errorf("generate briefing for %s: %w", m.Key(), err)
	}

	now := s.Now()
	plan := s.Plan(PlanInput{Market: m, At: now})

	b := Briefing{
		ID:          uuid.New().String(),
		Market:      m,
		GeneratedAt: now.UTC(),
		DayOfWeek:   plan.DayOfWeek,
		DayName:     estimate.DayNameTamil(plan.DayOfWeek),
		Greeting:    estimate.FriendlyGreeting(now, plan.Weather),
		Weather:     plan.Weather,
		Items:       plan.Items,
		PlanCost:    plan.PlanCost,
	}

	deals := estimate.CalculateGroupBuySavings(estimate.FindNearbySuppliers(string(m)), plan.Items)
	if len(deals) > 0 {
		best := deals[0]
		b.BestDeal = &best
	}

	s.store.SaveBriefing(m, b)
	log.Printf("DEBUG: briefing %s generated for %s (%s, %.1f°C)", b.ID, m.Key(), b.Weather.Condition, b.Weather.Temperature)
	return b, nil
}

// RecordSales appends a day of sales for a market. A missing date is set to
// today and a missing total is summed from the items.
func (s *Service) RecordSales(m Market, rec estimate.SalesRecord) estimate.SalesRecord {
	if rec.Date == "" {
		rec.Date = s.Now().Format(time.DateOnly)
	}
	if rec.TotalRevenue == 0 {
		for _, it := range rec.Items {
			rec.TotalRevenue += it.Revenue
		}
	}
	s.store.AddSales(m, rec)
	return rec
}

// Latest delegates to the underlying store.
func (s *Service) Latest(m Market) (Briefing, error) {
	return s.store.GetLatest(m)
}

// Range delegates to the underlying store.
func (s *Service) Range(m Market, from, to time.Time) ([]Briefing, error) {
	return s.store.GetRange(m, from, to)
}

func (s *Service) local(at time.Time) time.Time {
	if at.IsZero() {
		return s.Now()
	}
	return at.In(s.loc)
}
