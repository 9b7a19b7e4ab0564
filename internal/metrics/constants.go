package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Catalog metric names
const (
	MetricNameCatalogRecords      = "catalog_records"
	MetricNameCatalogFilesSkipped = "catalog_files_skipped_total"
	MetricNameCatalogReloads      = "catalog_reloads_total"
)

// Calculator metric names
const (
	MetricNameCostCacheLookups = "cost_cache_lookups_total"
	MetricNameTotalsComputed   = "loadout_totals_computed_total"
	MetricNameLoadoutEntries   = "loadout_entries"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
	MetricNameSSEClients      = "sse_clients"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Catalog metric help text
const (
	HelpTextCatalogRecords      = "Number of catalog records per partition in the active catalog"
	HelpTextCatalogFilesSkipped = "Total number of item files skipped while loading the catalog"
	HelpTextCatalogReloads      = "Total number of catalog reloads by outcome"
)

// Calculator metric help text
const (
	HelpTextCostCacheLookups = "Total number of per-item cost cache lookups by result"
	HelpTextTotalsComputed   = "Total number of loadout material totals computed by weapon cost mode"
	HelpTextLoadoutEntries   = "Number of entries in loadouts submitted for totals"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of internal events published by type"
	HelpTextSSEClients      = "Current number of connected event stream clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
	LabelResult   = "result"
	LabelMode     = "mode"
	LabelType     = "type"
)

// Label values
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LoadoutSizeBuckets covers loadouts from a single entry up to a few hundred
var LoadoutSizeBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250}
