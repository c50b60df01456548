// Package leaktest checks that background goroutines are gone once a
// component has been stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// DefaultTimeout bounds how long Check waits for goroutines to exit
	DefaultTimeout = time.Second
	pollInterval   = 10 * time.Millisecond
)

// Checker remembers the goroutine count at creation
type Checker struct {
	t        testing.TB
	baseline int
}

// New records the current goroutine count as the baseline
func New(t testing.TB) *Checker {
	t.Helper()
	runtime.Gosched()
	return &Checker{t: t, baseline: runtime.NumGoroutine()}
}

// Baseline is the count recorded by New
func (c *Checker) Baseline() int {
	return c.baseline
}

// Check polls until at most tolerance goroutines above the baseline remain,
// failing the test after timeout.
func (c *Checker) Check(tolerance int, timeout time.Duration) {
	c.t.Helper()
	if n, ok := waitFor(c.baseline+tolerance, timeout); !ok {
		c.t.Errorf("goroutine leak: baseline=%d now=%d tolerance=%d", c.baseline, n, tolerance)
	}
}

// NoLeak runs fn and requires every goroutine it started to have exited
func NoLeak(t testing.TB, fn func()) {
	t.Helper()
	c := New(t)
	fn()
	c.Check(0, DefaultTimeout)
}

func waitFor(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
