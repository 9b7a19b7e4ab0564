package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/LoadoutCalc_Go/internal/catalog"
	"github.com/osse101/LoadoutCalc_Go/internal/config"
	"github.com/osse101/LoadoutCalc_Go/internal/event"
	"github.com/osse101/LoadoutCalc_Go/internal/info"
)

// LoadCatalog builds the catalog store for cfg.DataDir and performs the first
// load. An empty data directory is an error; a catalog with authoring problems
// is served and the problems are logged. A non-nil publisher receives every
// reload outcome, the first load included.
func LoadCatalog(ctx context.Context, cfg *config.Config, publisher event.Publisher) (*catalog.Store, error) {
	slog.Info(LogMsgLoadingCatalog, "dir", cfg.DataDir, "schema_check", cfg.SchemaCheck)

	loader, err := catalog.NewLoader(cfg.SchemaCheck)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateLoader, err)
	}

	store := catalog.NewStore(loader, cfg.DataDir, cfg.CostCacheSize)
	if publisher != nil {
		store.SetPublisher(publisher)
	}
	snap, err := store.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInitialLoad, err)
	}
	if snap.Catalog.Len() == 0 {
		return nil, fmt.Errorf(ErrMsgNoItemsLoaded, cfg.DataDir)
	}

	slog.Info(LogMsgCatalogLoaded,
		"records", snap.Catalog.Len(),
		"files", snap.Report.FilesRead,
		"skipped", len(snap.Report.Skipped))

	if findings := catalog.Audit(snap.Catalog, snap.Report); len(findings) > 0 {
		slog.Warn(LogMsgCatalogAuditIssues, "findings", len(findings))
	}

	return store, nil
}

// LoadInfo prepares the help topic loader and release notes. Both are
// optional: a missing directory or changelog is logged and served empty.
func LoadInfo(cfg *config.Config) (*info.Loader, []info.ChangelogEntry) {
	loader := info.NewLoader(cfg.InfoDir)
	if err := loader.Load(); err != nil {
		slog.Warn(LogMsgInfoMissing, "dir", cfg.InfoDir, "error", err)
	}

	changelog, err := info.LoadChangelog(cfg.ChangelogPath)
	if err != nil {
		slog.Warn(LogMsgChangelogMissing, "path", cfg.ChangelogPath, "error", err)
		return loader, nil
	}
	return loader, changelog
}
