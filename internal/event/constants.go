package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Log message constants
const (
	LogMsgEventPublished = "Event published"

	// LogMsgHandlerErrorFormat wraps handler failures returned by Publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %w"
)
