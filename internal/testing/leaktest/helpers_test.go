package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoLeak_GoroutineThatExits(t *testing.T) {
	NoLeak(t, func() {
		done := make(chan struct{})
		go func() {
			time.Sleep(20 * time.Millisecond)
			close(done)
		}()
	})
}

func TestCheck_WithinTolerance(t *testing.T) {
	c := New(t)
	stop := make(chan struct{})
	go func() { <-stop }()

	c.Check(1, 100*time.Millisecond)
	close(stop)
	c.Check(0, DefaultTimeout)
}

func TestWaitFor_TimesOut(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	c := New(t)
	n, ok := waitFor(c.Baseline()-1, 30*time.Millisecond)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, n, c.Baseline())
}
