package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/LoadoutCalc_Go/internal/bootstrap"
	"github.com/osse101/LoadoutCalc_Go/internal/config"
	"github.com/osse101/LoadoutCalc_Go/internal/server"
)

const (
	programName     = "app"
	shutdownTimeout = 10 * time.Second
)

// @title LoadoutCalc API
// @version 1.0
// @description Material cost calculator for game loadouts.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, programName, true)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	warnings, err := cfg.Validate()
	if err != nil {
		slog.Error("Configuration invalid", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus, hub := bootstrap.SetupEvents()

	store, err := bootstrap.LoadCatalog(ctx, cfg, bus)
	if err != nil {
		slog.Error("Catalog unavailable", "error", err)
		os.Exit(1)
	}
	infoLoader, changelog := bootstrap.LoadInfo(cfg)
	sched, pool := bootstrap.StartCatalogWatcher(ctx, cfg, store)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Store:          store,
		Info:           infoLoader,
		Changelog:      changelog,
		Hub:            hub,
	})

	// SIGHUP re-reads the data directory; a failed reload keeps the old catalog
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				if _, err := store.Reload(ctx); err == nil {
					slog.Info("Catalog reloaded on SIGHUP")
				}
			}
		}
	}()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Hub:        hub,
		Scheduler:  sched,
		WorkerPool: pool,
	})
}
