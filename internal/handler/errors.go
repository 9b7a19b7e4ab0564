package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidFormat     = "Invalid format '%s'. Valid options: text, markdown"

	// Loadout error messages
	ErrMsgEntryRejected = "entries[%d]: %s"
	ErrMsgExtraRejected = "extra_materials[%d]: %s"
	ErrMsgOwnedRejected = "owned[%s]: %s"

	// Info error messages
	ErrMsgTopicNotFound        = "Topic '%s' not found in feature '%s'"
	ErrMsgFeatureOrTopicAbsent = "Feature or topic '%s' not found"

	// Admin error messages
	ErrMsgReloadFailed = "Failed to reload catalog"
)

// Success messages for API responses
const (
	MsgCatalogReloaded = "Catalog reloaded successfully"
)

// Log messages
const (
	LogMsgEncodeFailed = "Failed to encode JSON response"
	LogMsgWriteFailed  = "Failed to write response buffer"
	LogMsgTotalsServed = "Loadout totals computed"
)
