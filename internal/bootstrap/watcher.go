package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/LoadoutCalc_Go/internal/config"
	"github.com/osse101/LoadoutCalc_Go/internal/scheduler"
	"github.com/osse101/LoadoutCalc_Go/internal/worker"
)

// StartCatalogWatcher polls the data directory every cfg.ReloadInterval and
// reloads the store when item files change. It returns nil values when
// polling is disabled.
func StartCatalogWatcher(ctx context.Context, cfg *config.Config, store worker.CatalogReloader) (*scheduler.Scheduler, *worker.Pool) {
	if cfg.ReloadInterval <= 0 {
		slog.Info(LogMsgWatcherDisabled)
		return nil, nil
	}

	pool := worker.NewPool(ctx, worker.DefaultWorkerCount, worker.DefaultQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.ReloadInterval, worker.NewCatalogReloadJob(store))

	slog.Info(LogMsgWatcherStarted, "dir", store.Dir(), "interval", cfg.ReloadInterval)
	return sched, pool
}
