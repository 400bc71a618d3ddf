package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// cartPruner sweeps expired session carts.
type cartPruner interface {
	PruneExpired(now time.Time) int
}

// CartJanitorJob periodically removes expired session carts from the store.
// Runs every minute; expiry is also enforced lazily on read, so the sweep
// only reclaims memory.
type CartJanitorJob struct {
	store  cartPruner
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCartJanitorJob creates a janitor for the given cart store.
func NewCartJanitorJob(store cartPruner, logger *slog.Logger) *CartJanitorJob {
	return &CartJanitorJob{
		store:  store,
		cron:   cron.New(),
		logger: logger.With("component", "cart_janitor_job"),
	}
}

// Start begins the sweep on a once-a-minute schedule.
func (j *CartJanitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if pruned := j.store.PruneExpired(time.Now()); pruned > 0 {
			j.logger.InfoContext(ctx, "Pruned expired session carts", "count", pruned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart janitor job started (running every minute)")
	return nil
}

// Stop stops the janitor.
func (j *CartJanitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart janitor job stopped")
}
