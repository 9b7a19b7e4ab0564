package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 32

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 8

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often idle streams get a ping
const KeepaliveInterval = 30 * time.Second

// Event types for SSE
const (
	EventTypeConnected           = "connected"
	EventTypeCatalogReloaded     = "catalog.reloaded"
	EventTypeCatalogReloadFailed = "catalog.reload_failed"
	EventTypeKeepalive           = "keepalive"
)

// QueryParamTypes filters a stream to a comma separated list of event types
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
)

// MsgReloadFailed is the client-facing text of a failed reload
const MsgReloadFailed = "Catalog reload failed, previous catalog is still served"

// ErrMsgStreamingUnsupported is returned when the writer cannot flush
const ErrMsgStreamingUnsupported = "SSE not supported"
