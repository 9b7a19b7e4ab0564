package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoadoutCalc_Go/internal/config"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/testing/leaktest"
)

func TestStartCatalogWatcher_Disabled(t *testing.T) {
	cfg := &config.Config{DataDir: t.TempDir()}

	sched, pool := StartCatalogWatcher(context.Background(), cfg, nil)

	assert.Nil(t, sched)
	assert.Nil(t, pool)
}

func TestStartCatalogWatcher_ReloadsChangedFiles(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "rifle_i.json"), `{"id": "rifle_i", "isWeapon": true, "recipe": {"steel": 10}}`)
	cfg := &config.Config{DataDir: dir, CostCacheSize: 16, ReloadInterval: 10 * time.Millisecond}

	ctx := context.Background()
	store, err := LoadCatalog(ctx, cfg, nil)
	require.NoError(t, err)

	sched, pool := StartCatalogWatcher(ctx, cfg, store)
	require.NotNil(t, sched)
	require.NotNil(t, pool)

	writeFile(t, filepath.Join(dir, "rifle_ii.json"), `{"id": "rifle_ii", "isWeapon": true, "upgradeCost": {"steel": 5}}`)

	assert.Eventually(t, func() bool {
		snap, err := store.Current()
		return err == nil && snap.Catalog.Len() == 2
	}, 2*time.Second, 10*time.Millisecond)

	snap, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, domain.Materials{"steel": 15}, snap.Calculator.FullCraftCost("rifle_ii"))

	GracefulShutdown(ctx, ShutdownComponents{Scheduler: sched, WorkerPool: pool})
	checker.Check(0)
}
