package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Catalog Reload Worker
// ============================================================================

// Log messages for catalog reload operations
const (
	LogMsgCatalogUnchanged    = "Catalog directory unchanged, skipping reload"
	LogMsgCatalogChanged      = "Catalog directory changed, reloading"
	LogMsgCatalogScanFailed   = "Failed to scan catalog directory"
	LogMsgCatalogReloadFailed = "Scheduled catalog reload failed"
)

// ============================================================================
// Configuration
// ============================================================================

// Pool sizing used by the service
const (
	DefaultWorkerCount = 1
	DefaultQueueSize   = 4
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
