package bootstrap

import (
	"log/slog"

	"github.com/osse101/LoadoutCalc_Go/internal/event"
	"github.com/osse101/LoadoutCalc_Go/internal/sse"
)

// SetupEvents creates the in-process event bus and starts the SSE hub that
// forwards catalog events to /api/v1/events clients.
func SetupEvents() (event.Bus, *sse.Hub) {
	bus := event.NewMemoryBus()

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	slog.Info(LogMsgEventsReady)
	return bus, hub
}
