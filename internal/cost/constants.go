package cost

// DefaultCacheSize bounds the per-item memo when no size is configured
const DefaultCacheSize = 512

const cacheKeySeparator = "|"

// Log messages
const (
	LogMsgCacheDisabled = "cost cache disabled, size must be positive"
)
