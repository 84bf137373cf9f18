package workers

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the cache sweeper, when a schedule and a max age are
// configured, and the invalidation bus listener.
func NewWorkers(c *cache.Cache, cfg config.Workers, cacheCfg config.Cache, logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if cfg.CacheSweepSchedule != "" && cacheCfg.MaxAge > 0 {
		sweeper, err := newCacheSweeper(c, cfg.CacheSweepSchedule, cacheCfg.MaxAge, logger)
		if err != nil {
			return nil, err
		}
		w.workers = append(w.workers, sweeper)
	}
	w.workers = append(w.workers, newBusListener(c, logger))

	return w, nil
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
