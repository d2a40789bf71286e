package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	redisadapter "github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/adapters/redis"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

type VisitorLister interface {
	List(ctx context.Context) ([]domain.Visitor, error)
}

type BookingLister interface {
	List(ctx context.Context) ([]domain.Booking, error)
}

type EventLister interface {
	List(ctx context.Context) ([]domain.Event, error)
}

// Service fetches collection snapshots and runs the reductions, memoizing
// results in Redis for a short TTL so dashboard refreshes don't hammer the
// store. Cache errors degrade to a direct computation.
type Service struct {
	visitors VisitorLister
	bookings BookingLister
	events   EventLister
	cache    *redisadapter.Cache
	ttl      time.Duration
	logger   observability.Logger
}

func NewService(visitors VisitorLister, bookings BookingLister, events EventLister, cache *redisadapter.Cache, ttl time.Duration, logger observability.Logger) *Service {
	return &Service{
		visitors: visitors,
		bookings: bookings,
		events:   events,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var cached Summary
	if s.tryCache(ctx, "analytics:summary", &cached) {
		return &cached, nil
	}

	var (
		visitors []domain.Visitor
		bookings []domain.Booking
		events   []domain.Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		visitors, err = s.visitors.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		bookings, err = s.bookings.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		events, err = s.events.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Summarize(visitors, bookings, events, time.Now())
	s.storeCache(ctx, "analytics:summary", summary)
	return &summary, nil
}

func (s *Service) PopularEvents(ctx context.Context) ([]EventStat, error) {
	var cached []EventStat
	if s.tryCache(ctx, "analytics:popular-events", &cached) {
		return cached, nil
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := PopularEvents(bookings, TopN)
	s.storeCache(ctx, "analytics:popular-events", stats)
	return stats, nil
}

func (s *Service) TopCities(ctx context.Context) ([]KeyCount, error) {
	return s.visitorCounts(ctx, "analytics:top-cities", TopCities)
}

func (s *Service) TopInterests(ctx context.Context) ([]KeyCount, error) {
	return s.visitorCounts(ctx, "analytics:top-interests", TopInterests)
}

func (s *Service) visitorCounts(ctx context.Context, key string, reduce func([]domain.Visitor, int) []KeyCount) ([]KeyCount, error) {
	var cached []KeyCount
	if s.tryCache(ctx, key, &cached) {
		return cached, nil
	}

	visitors, err := s.visitors.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := reduce(visitors, TopN)
	s.storeCache(ctx, key, counts)
	return counts, nil
}

func (s *Service) tryCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		s.logger.WithField("key", key).Warn("analytics cache read failed", err)
		return false
	}
	return hit
}

func (s *Service) storeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.ttl); err != nil {
		s.logger.WithField("key", key).Warn("analytics cache write failed", err)
	}
}
