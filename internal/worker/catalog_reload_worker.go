package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/osse101/LoadoutCalc_Go/internal/catalog"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
)

// CatalogReloader is the part of *catalog.Store the reload job needs
type CatalogReloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
	Dir() string
}

// dirFingerprint summarises the item files of a directory. Any added,
// removed, resized or touched file changes it.
type dirFingerprint struct {
	files   int
	bytes   int64
	newest  int64 // unix nanos of the latest modification
	nameSum string
}

// CatalogReloadJob reloads the catalog when the data directory has changed
// since the last successful load.
type CatalogReloadJob struct {
	store CatalogReloader

	mu   sync.Mutex
	last dirFingerprint
}

// NewCatalogReloadJob creates a job primed with the directory's current
// state, so the first tick after startup does not reload needlessly.
func NewCatalogReloadJob(store CatalogReloader) *CatalogReloadJob {
	job := &CatalogReloadJob{store: store}
	if fp, err := fingerprint(store.Dir()); err == nil {
		job.last = fp
	}
	return job
}

// Process implements Job
func (j *CatalogReloadJob) Process(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	log := logger.FromContext(ctx)
	dir := j.store.Dir()

	fp, err := fingerprint(dir)
	if err != nil {
		log.Warn(LogMsgCatalogScanFailed, "dir", dir, "error", err)
		return err
	}
	if fp == j.last {
		log.Debug(LogMsgCatalogUnchanged, "dir", dir)
		return nil
	}

	log.Info(LogMsgCatalogChanged, "dir", dir, "files", fp.files)
	if _, err := j.store.Reload(ctx); err != nil {
		// Keep the old fingerprint so the next tick retries
		return fmt.Errorf("%s: %w", LogMsgCatalogReloadFailed, err)
	}
	j.last = fp
	return nil
}

func fingerprint(dir string) (dirFingerprint, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return dirFingerprint{}, err
	}

	var fp dirFingerprint
	var names strings.Builder
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), catalog.ItemFileExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return dirFingerprint{}, err
		}
		fp.files++
		fp.bytes += info.Size()
		if mod := info.ModTime().UnixNano(); mod > fp.newest {
			fp.newest = mod
		}
		names.WriteString(entry.Name())
		names.WriteByte(0)
	}
	fp.nameSum = names.String()
	return fp, nil
}
