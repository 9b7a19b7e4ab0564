package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/LoadoutCalc_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers handlers for the catalog events clients care about
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.CatalogReloaded, s.handleCatalogReloaded)
	s.bus.Subscribe(event.CatalogReloadFailed, s.handleCatalogReloadFailed)

	slog.Info(LogMsgSubscriberReady,
		"types", []string{string(event.CatalogReloaded), string(event.CatalogReloadFailed)})
}

func (s *Subscriber) handleCatalogReloaded(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CatalogReloadedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	// The data directory stays server-side
	s.hub.Broadcast(EventTypeCatalogReloaded, CatalogReloadedPayload{
		Records:  payload.Records,
		Skipped:  payload.Skipped,
		Findings: payload.Findings,
		LoadedAt: payload.LoadedAt,
	})
	return nil
}

func (s *Subscriber) handleCatalogReloadFailed(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CatalogReloadFailedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	// Load errors carry file paths and stay in the server log
	s.hub.Broadcast(EventTypeCatalogReloadFailed, CatalogReloadFailedPayload{
		Message:   MsgReloadFailed,
		Timestamp: payload.Timestamp,
	})
	return nil
}
