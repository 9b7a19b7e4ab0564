package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/LoadoutCalc_Go/internal/cost"
	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/event"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
	"github.com/osse101/LoadoutCalc_Go/internal/metrics"
)

// Snapshot is one successfully loaded catalog together with the calculator
// bound to it. Snapshots are never modified after publication.
type Snapshot struct {
	Catalog    *Catalog
	Report     *LoadReport
	Calculator *cost.Calculator
	LoadedAt   time.Time
}

// Store publishes the current Snapshot. Readers never block; reloads are
// serialized and a failed reload keeps serving the previous snapshot.
type Store struct {
	loader    Loader
	dir       string
	cacheSize int

	reloadMu  sync.Mutex
	current   atomic.Pointer[Snapshot]
	publisher event.Publisher
}

// NewStore creates an empty store. Call Reload before serving.
func NewStore(loader Loader, dir string, cacheSize int) *Store {
	return &Store{loader: loader, dir: dir, cacheSize: cacheSize}
}

// SetPublisher announces every reload outcome on p. Call it before the
// first Reload.
func (s *Store) SetPublisher(p event.Publisher) {
	s.publisher = p
}

// Reload reads the data directory again and swaps in the new snapshot.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	log := logger.FromContext(ctx)

	c, report, err := LoadCatalog(ctx, s.loader, s.dir)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.StatusFailure).Inc()
		log.Error(LogMsgReloadFailed, "dir", s.dir, "error", err)
		s.publish(ctx, event.NewCatalogReloadFailedEvent(s.dir, err))
		return nil, err
	}

	snap := &Snapshot{
		Catalog:    c,
		Report:     report,
		Calculator: cost.NewCalculator(c.Index(), s.cacheSize),
		LoadedAt:   time.Now().UTC(),
	}
	s.current.Store(snap)

	metrics.CatalogReloads.WithLabelValues(metrics.StatusSuccess).Inc()
	log.Info(LogMsgReloadSucceeded, "records", c.Len(), "skipped", len(report.Skipped))

	if s.publisher != nil {
		s.publish(ctx, event.NewCatalogReloadedEvent(event.CatalogReloadedPayloadV1{
			Dir:       s.dir,
			Records:   c.Len(),
			FilesRead: report.FilesRead,
			Skipped:   len(report.Skipped),
			Findings:  len(Audit(c, report)),
			LoadedAt:  snap.LoadedAt,
		}))
	}
	return snap, nil
}

// publish never fails a reload; subscriber errors are only logged
func (s *Store) publish(ctx context.Context, e event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", e.Type, "error", err)
	}
}

// Current returns the active snapshot or domain.ErrCatalogNotLoaded.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, domain.ErrCatalogNotLoaded
	}
	return snap, nil
}

// Ready reports whether a snapshot has been published.
func (s *Store) Ready() bool {
	return s.current.Load() != nil
}

// Dir returns the data directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// CheckHealth satisfies the readiness probe: the store is healthy once a
// snapshot has been published.
func (s *Store) CheckHealth(_ context.Context) error {
	if !s.Ready() {
		return domain.ErrCatalogNotLoaded
	}
	return nil
}
