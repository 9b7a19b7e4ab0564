package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/osse101/LoadoutCalc_Go/internal/bootstrap"
	"github.com/osse101/LoadoutCalc_Go/internal/config"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
	"github.com/osse101/LoadoutCalc_Go/internal/planner"
)

const (
	programName = "planner"
	helpFeature = "planner"
)

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup so the log file and the terminal are
// restored before the process exits.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// The screen belongs to the UI, so logs go to the file only
	logFile, err := bootstrap.SetupLogger(cfg, programName, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		return 1
	}
	defer logFile.Close()

	ctx := logger.WithSessionID(context.Background(), logger.GenerateRequestID())

	store, err := bootstrap.LoadCatalog(ctx, cfg, nil)
	if err != nil {
		return fail(fmt.Sprintf("Catalog unavailable: %v (see %s)", err, logFile.Name()))
	}
	snap, err := store.Current()
	if err != nil {
		return fail(err.Error())
	}

	infoLoader, _ := bootstrap.LoadInfo(cfg)
	help, _ := infoLoader.GetFeature(helpFeature)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fail(fmt.Sprintf("Failed to create screen: %v", err))
	}
	if err := screen.Init(); err != nil {
		return fail(fmt.Sprintf("Failed to initialize screen: %v", err))
	}
	defer screen.Fini()

	model := planner.NewModel(ctx, snap.Catalog, snap.Calculator, help)
	planner.Run(screen, model)
	slog.Info("Planner closed")
	return 0
}

func fail(msg string) int {
	slog.Error(msg)
	fmt.Fprintln(os.Stderr, msg)
	return 1
}
