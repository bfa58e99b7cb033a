package sessionpool

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner periodically sweeps expired records out of a Store. Stores never
// run their own timers - reclamation is always host-triggered - and Cleaner
// is the host-side scheduler for it.
type Cleaner struct {
	store    Store
	interval time.Duration
	log      *slog.Logger
}

// NewCleaner creates a cleaner that sweeps store every interval. A
// non-positive interval falls back to the DefaultConfig cleanup interval,
// a nil logger to slog.Default().
func NewCleaner(store Store, interval time.Duration, log *slog.Logger) (*Cleaner, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if interval <= 0 {
		interval = DefaultConfig().CleanupInterval
	}
	if log == nil {
		log = slog.Default()
	}
	return &Cleaner{store: store, interval: interval, log: log}, nil
}

// Run sweeps on a fixed interval until ctx is cancelled and returns the
// context's error. Backends that reclaim expired records on their own are
// never swept; Run just blocks until cancellation so the caller keeps a
// uniform lifecycle regardless of backend.
func (c *Cleaner) Run(ctx context.Context) error {
	if c.store.AutoHandlesExpiry() {
		c.log.InfoContext(ctx, "session store reclaims expired records itself, cleaner idle")
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			removed, err := c.store.DeleteExpired(ctx)
			if err != nil {
				c.log.ErrorContext(ctx, "expired session sweep failed", "error", err)
				continue
			}
			if len(removed) > 0 {
				c.log.InfoContext(ctx, "expired sessions removed", "count", len(removed))
			}
		}
	}
}
