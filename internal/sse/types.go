package sse

import "time"

// Event represents an event sent over SSE
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// ConnectedPayload is the first event of every stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
}

// CatalogReloadedPayload tells clients to refetch catalog data
type CatalogReloadedPayload struct {
	Records  int       `json:"records"`
	Skipped  int       `json:"skipped"`
	Findings int       `json:"findings"`
	LoadedAt time.Time `json:"loaded_at"`
}

// CatalogReloadFailedPayload tells clients the previous catalog is still served
type CatalogReloadFailedPayload struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}
