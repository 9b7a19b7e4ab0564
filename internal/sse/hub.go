package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LoadoutCalc_Go/internal/metrics"
)

// Client represents a connected SSE client
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans broadcast events out to connected clients. Slow clients miss
// events rather than block the hub.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the hub down and closes every client channel, which ends the
// open streams.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
	})
	h.wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, client := range h.clients {
		close(client.EventChannel)
		delete(h.clients, id)
	}
	// Registrations queued while the loop was exiting
	for {
		select {
		case client := <-h.register:
			close(client.EventChannel)
		default:
			metrics.SSEClients.Set(0)
			return
		}
	}
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			metrics.SSEClients.Set(float64(len(h.clients)))
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			metrics.SSEClients.Set(float64(len(h.clients)))
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event.Type) {
					continue
				}
				select {
				case client.EventChannel <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client. It returns false once the hub is stopped.
func (h *Hub) Register(eventTypes []string) (*Client, bool) {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	select {
	case <-h.shutdown:
		return nil, false
	default:
	}
	select {
	case h.register <- client:
		return client, true
	case <-h.shutdown:
		return nil, false
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client. It reports false
// when the buffer is full and the event was dropped.
func (h *Hub) Broadcast(eventType string, payload any) bool {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
		slog.Debug(LogMsgEventBroadcast, "type", eventType)
		return true
	default:
		slog.Warn(LogMsgEventDropped, "type", eventType)
		return false
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event in text/event-stream framing
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data), nil
}
