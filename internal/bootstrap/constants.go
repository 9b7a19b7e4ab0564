package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames; the first
	// verb is the program name
	LogFileNamePattern = "%s_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new one is opened
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting LoadoutCalc"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Catalog and Help Content
// =============================================================================

const (
	LogMsgLoadingCatalog     = "Loading item catalog..."
	LogMsgCatalogLoaded      = "Item catalog loaded"
	LogMsgCatalogAuditIssues = "Catalog has authoring problems, see /api/v1/audit"
	LogMsgChangelogMissing   = "Changelog unavailable"
	LogMsgInfoMissing        = "Help topics unavailable"

	LogMsgEventsReady     = "Event bus and SSE hub started"
	LogMsgWatcherStarted  = "Watching item catalog for changes"
	LogMsgWatcherDisabled = "Catalog polling disabled, reload with SIGHUP or the admin route"

	ErrMsgCreateLoader  = "failed to create catalog loader"
	ErrMsgInitialLoad   = "failed to load item catalog"
	ErrMsgNoItemsLoaded = "no items found in %s"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingWatcher      = "Stopping catalog watcher..."
	LogMsgStoppingEvents       = "Closing event streams..."
)
