package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoadoutCalc_Go/internal/config"
	"github.com/osse101/LoadoutCalc_Go/internal/sse"
)

func TestSetupEvents_ForwardsCatalogReloads(t *testing.T) {
	bus, hub := SetupEvents()

	client, ok := hub.Register([]string{sse.EventTypeCatalogReloaded})
	require.True(t, ok)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "rifle_i.json"), `{"id": "rifle_i", "isWeapon": true, "recipe": {"steel": 10}}`)
	_, err := LoadCatalog(context.Background(), &config.Config{DataDir: dir, CostCacheSize: 16}, bus)
	require.NoError(t, err)

	select {
	case e := <-client.EventChannel:
		assert.Equal(t, sse.EventTypeCatalogReloaded, e.Type)
		payload, ok := e.Payload.(sse.CatalogReloadedPayload)
		require.True(t, ok)
		assert.Equal(t, 1, payload.Records)
	case <-time.After(time.Second):
		t.Fatal("no reload event")
	}

	GracefulShutdown(context.Background(), ShutdownComponents{Hub: hub})
	_, open := <-client.EventChannel
	assert.False(t, open)
}
