// Package leaktest holds test helpers that catch goroutines and memory left
// behind by concurrent catalog reloads, server shutdown and the planner loop.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// settleTimeout bounds how long Check waits for goroutines to exit
	settleTimeout = 500 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count at creation and reports an
// error if it has grown by more than a tolerance when Check runs.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a checker from the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(pollInterval)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check polls until the goroutine count is within tolerance of the baseline
// or settleTimeout passes.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// MemoryChecker compares heap allocation before and after a block of work
type MemoryChecker struct {
	before runtime.MemStats
	t      testing.TB
}

// NewMemoryChecker creates a checker from the current heap stats
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()

	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &MemoryChecker{
		before: m,
		t:      t,
	}
}

// Check fails the test if live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	beforeMB := float64(m.before.HeapAlloc) / 1024 / 1024
	afterMB := float64(after.HeapAlloc) / 1024 / 1024
	if growthMB := afterMB - beforeMB; growthMB > maxGrowthMB {
		m.t.Errorf("Potential memory leak: before=%.2fMB, after=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			beforeMB, afterMB, growthMB, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves any goroutine behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines are running
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if current := settle(target, timeout); current > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", current, target)
	}
}

func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
