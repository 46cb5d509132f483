// Package daily serves the quote of the day. The pick is cached per
// calendar day and rotated by a midnight cron job, with a lazy recompute on
// cache miss so the endpoint works right after startup too.
package daily

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/jorren/quotespark/internal/store"
)

// Service picks and caches the daily quote.
type Service struct {
	store     *store.Store
	cache     *gocache.Cache
	scheduler gocron.Scheduler
}

func New(s *store.Store, refreshCron string) (*Service, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	svc := &Service{
		store:     s,
		cache:     gocache.New(48*time.Hour, time.Hour),
		scheduler: scheduler,
	}

	if _, err := scheduler.NewJob(
		gocron.CronJob(refreshCron, false),
		gocron.NewTask(svc.rotate),
	); err != nil {
		return nil, fmt.Errorf("failed to schedule daily quote rotation: %w", err)
	}

	return svc, nil
}

// Start begins the rotation schedule.
func (s *Service) Start() {
	s.scheduler.Start()
}

// Stop shuts the scheduler down.
func (s *Service) Stop() error {
	return s.scheduler.Shutdown()
}

// Quote returns today's quote joined with its category. IsFavorite is left
// false, the API layer resolves it per session. Returns store.ErrNotFound
// when the store holds no quotes at all.
func (s *Service) Quote() (*store.QuoteWithCategory, error) {
	key := dayKey(time.Now())

	if cached, found := s.cache.Get(key); found {
		if id, ok := cached.(int); ok {
			// Re-join on every read so category renames show up and deleted
			// quotes trigger a fresh pick.
			if quote, err := s.store.GetQuoteWithCategory(id); err == nil {
				return quote, nil
			}
		}
	}

	quote, err := s.store.GetRandomQuote(nil)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, quote.ID, gocache.DefaultExpiration)
	return s.store.GetQuoteWithCategory(quote.ID)
}

// rotate pre-picks the quote for the new day.
func (s *Service) rotate() {
	quote, err := s.store.GetRandomQuote(nil)
	if err != nil {
		log.Warn("no quotes available for daily rotation")
		return
	}
	s.cache.Set(dayKey(time.Now()), quote.ID, gocache.DefaultExpiration)
	log.Info("rotated daily quote", "id", quote.ID)
}

func dayKey(t time.Time) string {
	return "daily_quote_" + t.Format("2006-01-02")
}
