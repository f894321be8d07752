package feedcache

import (
	"context"
	"log/slog"
	"time"
)

// Refreshable is anything that can re-warm the cache.
type Refreshable interface {
	Refresh(ctx context.Context) error
}

type Refresher struct {
	target   Refreshable
	interval time.Duration
	logger   *slog.Logger
}

func NewRefresher(target Refreshable, interval time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

// Start refreshes once immediately and then on every tick until the context
// is cancelled.
func (r *Refresher) Start(ctx context.Context) error {
	r.logger.Info("feed cache refresher started", "interval", r.interval)

	r.runRefresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("feed cache refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			r.runRefresh(ctx)
		}
	}
}

func (r *Refresher) runRefresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := r.target.Refresh(refreshCtx); err != nil {
		r.logger.Error("feed cache refresh failed", "error", err)
	}
}
