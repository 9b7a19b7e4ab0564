package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Catalog Metrics
var (
	CatalogRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogRecords,
			Help: HelpTextCatalogRecords,
		},
		[]string{LabelCategory},
	)

	CatalogFilesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogFilesSkipped,
			Help: HelpTextCatalogFilesSkipped,
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelStatus},
	)
)

// Calculator Metrics
var (
	CostCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCostCacheLookups,
			Help: HelpTextCostCacheLookups,
		},
		[]string{LabelResult},
	)

	TotalsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTotalsComputed,
			Help: HelpTextTotalsComputed,
		},
		[]string{LabelMode},
	)

	LoadoutEntries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameLoadoutEntries,
			Help:    HelpTextLoadoutEntries,
			Buckets: LoadoutSizeBuckets,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)
