package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/LoadoutCalc_Go/internal/logger"
	"github.com/osse101/LoadoutCalc_Go/internal/metrics"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string         `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type           `json:"type"`
	Payload  any            `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) any {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Catalog event types
const (
	CatalogReloaded     Type = "catalog.reloaded"
	CatalogReloadFailed Type = "catalog.reload_failed"
)

// Metadata keys
const (
	MetadataRequestID = "request_id"
)

// CatalogReloadedPayloadV1 describes a newly published catalog snapshot
type CatalogReloadedPayloadV1 struct {
	Dir       string    `json:"dir"`
	Records   int       `json:"records"`
	FilesRead int       `json:"files_read"`
	Skipped   int       `json:"skipped"`
	Findings  int       `json:"findings"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// CatalogReloadFailedPayloadV1 describes a reload that kept the previous snapshot
type CatalogReloadFailedPayloadV1 struct {
	Dir       string `json:"dir"`
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// NewCatalogReloadedEvent creates a catalog reloaded event
func NewCatalogReloadedEvent(payload CatalogReloadedPayloadV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogReloaded,
		Payload: payload,
	}
}

// NewCatalogReloadFailedEvent creates a catalog reload failure event
func NewCatalogReloadFailedEvent(dir string, err error) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogReloadFailed,
		Payload: CatalogReloadFailedPayloadV1{
			Dir:       dir,
			Error:     err.Error(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the publishing half of a Bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type synchronously.
// All handlers run even when one fails; the failures are joined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	if id, ok := logger.RequestIDFromContext(ctx); ok {
		if event.Metadata == nil {
			event.Metadata = make(map[string]any)
		}
		event.Metadata[MetadataRequestID] = id
	}

	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgEventPublished, "type", event.Type, "handlers", len(handlers))

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
