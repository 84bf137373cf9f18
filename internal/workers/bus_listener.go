package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
)

const defaultResubscribeDelay = 5 * time.Second

// busListener applies invalidations published by other instances. A broken
// subscription is retried after retryDelay.
type busListener struct {
	cache      *cache.Cache
	retryDelay time.Duration
	logger     *logger.Logger
}

func newBusListener(c *cache.Cache, logger *logger.Logger) *busListener {
	return &busListener{cache: c, retryDelay: defaultResubscribeDelay, logger: logger}
}

func (l *busListener) Run(ctx context.Context) {
	go l.listen(ctx)
}

func (l *busListener) listen(ctx context.Context) {
	for {
		err := l.cache.Listen(ctx)
		if err == nil || ctx.Err() != nil {
			return
		}
		l.logger.Warn().Err(err).
			Str("func", "*busListener.listen").
			Dur("retry_in", l.retryDelay).
			Msg("invalidation bus subscription failed")

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.retryDelay):
		}
	}
}
