// Package scheduler enqueues jobs on a worker pool at fixed intervals.
package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/LoadoutCalc_Go/internal/worker"
)

// LogMsgIntervalIgnored is logged when Schedule is given a non-positive interval
const LogMsgIntervalIgnored = "Scheduler interval not positive, job not scheduled"

// Scheduler manages interval jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval, starting one interval from
// now. A tick is skipped when the pool queue is full, so a slow job never
// piles up behind itself. Non-positive intervals are ignored.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		slog.Debug(LogMsgIntervalIgnored, "interval", interval)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It does not stop the pool.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
