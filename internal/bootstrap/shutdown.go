package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/LoadoutCalc_Go/internal/scheduler"
	"github.com/osse101/LoadoutCalc_Go/internal/server"
	"github.com/osse101/LoadoutCalc_Go/internal/sse"
	"github.com/osse101/LoadoutCalc_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server     *server.Server
	Hub        *sse.Hub
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
}

// GracefulShutdown closes event streams first, since the server waits for
// open connections. It then stops the HTTP server, letting in-flight
// requests finish until ctx expires, and finally the catalog watcher.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Hub != nil {
		slog.Info(LogMsgStoppingEvents)
		components.Hub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingWatcher)
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
