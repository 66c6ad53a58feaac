package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/dailycart/internal/briefing"
)

// Generator builds and stores a briefing for a market.
type Generator interface {
	Generate(ctx context.Context, m briefing.Market) (briefing.Briefing, error)
}

// Scheduler periodically generates briefings for configured markets.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Generator
	markets   []briefing.Market
	interval  time.Duration
}

// New creates a new Scheduler.
func New(markets []briefing.Market, interval time.Duration, service Generator) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		markets:   markets,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.markets) == 0 {
		log.Println("scheduler: no markets configured; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.jobInterval()).Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// jobInterval is the configured interval, or one hour when it is not positive.
func (s *Scheduler) jobInterval() time.Duration {
	if s.interval <= 0 {
		return time.Hour
	}
	return s.interval
}

// RunOnce generates a briefing for every market concurrently.
func (s *Scheduler) RunOnce() {
	log.Println("scheduler: running briefing job")

	var wg sync.WaitGroup
	for _, m := range s.markets {
		m := m // per-iteration copy; go.mod targets pre-1.22 loop semantics
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if _, err := s.service.Generate(ctx, m); err != nil {
				log.Printf("scheduler: briefing failed for %s: %v", m.Key(), err)
			}
		}()
	}
	wg.Wait()
	log.Println("scheduler: completed briefing job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
