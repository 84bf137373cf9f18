package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/robfig/cron/v3"
)

// cacheSweeper drops query cache entries older than maxAge on a cron schedule.
type cacheSweeper struct {
	cache  *cache.Cache
	maxAge time.Duration
	cron   *cron.Cron
	logger *logger.Logger
}

func newCacheSweeper(c *cache.Cache, schedule string, maxAge time.Duration, logger *logger.Logger) (*cacheSweeper, error) {
	s := &cacheSweeper{
		cache:  c,
		maxAge: maxAge,
		cron:   cron.New(),
		logger: logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("cache sweeper: invalid schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *cacheSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("max_age", s.maxAge).Msg("starting cache sweeper")
	s.cron.Start()

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		s.logger.Info().Msg("cache sweeper stopped")
	}()
}

func (s *cacheSweeper) sweep() {
	removed := s.cache.Sweep(s.maxAge)
	s.logger.Debug().
		Str("func", "*cacheSweeper.sweep").
		Int("removed", removed).
		Int("entries", s.cache.Len()).
		Msg("cache swept")
}
