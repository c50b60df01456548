package cooldown_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/cooldown"
	"github.com/osse101/TextRealm_Go/internal/domain"
)

func newTracker() *cooldown.Tracker {
	return cooldown.NewTracker(cooldown.Config{
		TickDuration: time.Second,
		Defaults:     map[string]int{"chat": 3},
	})
}

func TestTracker_ChatScenario(t *testing.T) {
	tr := newTracker()

	// ARRANGE / ASSERT: a fresh pair is idle
	assert.Equal(t, 0, tr.TicksLeft("alice", "chat"))

	// ACT
	tr.Add("alice", "chat", nil, true)

	// ASSERT
	assert.Equal(t, 3, tr.TicksLeft("alice", "chat"))
	for range 3 {
		tr.Tick()
	}
	assert.Equal(t, 0, tr.TicksLeft("alice", "chat"))
	assert.Equal(t, 0, tr.Active(), "expired entries are evicted")
}

func TestTracker_Add(t *testing.T) {
	tests := []struct {
		name       string
		explicit   *int
		useDefault bool
		want       int
	}{
		{"explicit wins over default", intPtr(7), true, 7},
		{"default when requested", nil, true, 3},
		{"no-op without either", nil, false, 0},
		{"explicit zero clears", intPtr(0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker()
			tr.Add("bob", "chat", tt.explicit, tt.useDefault)
			assert.Equal(t, tt.want, tr.TicksLeft("bob", "chat"))
		})
	}
}

func TestTracker_NeverIncreasesOnTick(t *testing.T) {
	tr := newTracker()
	tr.Add("alice", "chat", intPtr(5), false)

	prev := tr.TicksLeft("alice", "chat")
	for range 10 {
		tr.Tick()
		cur := tr.TicksLeft("alice", "chat")
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestTracker_ActorsAreIndependent(t *testing.T) {
	tr := newTracker()
	tr.Add("alice", "chat", nil, true)

	assert.Equal(t, 0, tr.TicksLeft("bob", "chat"))
	assert.Equal(t, 0, tr.TicksLeft("alice", "global"))
}

func TestTracker_Check(t *testing.T) {
	tr := newTracker()
	require.NoError(t, tr.Check("alice", "chat"))

	tr.Add("alice", "chat", intPtr(2), false)
	err := tr.Check("alice", "chat")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOnCooldown))
	var cd cooldown.ErrOnCooldown
	require.True(t, errors.As(err, &cd))
	assert.Equal(t, 2, cd.Ticks)
	assert.Equal(t, 2*time.Second, cd.Remaining)

	tr.Reset("alice", "chat")
	assert.NoError(t, tr.Check("alice", "chat"))
}

func TestTracker_DevModeBypass(t *testing.T) {
	tr := cooldown.NewTracker(cooldown.Config{DevMode: true, Defaults: map[string]int{"chat": 3}})
	tr.Add("alice", "chat", nil, true)

	assert.NoError(t, tr.Check("alice", "chat"))
	assert.Equal(t, 3, tr.TicksLeft("alice", "chat"))
}

// TestErrOnCooldown_Error tests the error message formatting
func TestErrOnCooldown_Error(t *testing.T) {
	tests := []struct {
		name          string
		err           cooldown.ErrOnCooldown
		wantSubstring string
	}{
		{
			name:          "minutes and seconds",
			err:           cooldown.ErrOnCooldown{Action: "chat", Remaining: 2*time.Minute + 30*time.Second},
			wantSubstring: fmt.Sprintf(cooldown.ErrFmtCooldownWithMinutes, "chat", 2, 30),
		},
		{
			name:          "seconds only",
			err:           cooldown.ErrOnCooldown{Action: "global", Remaining: 45 * time.Second},
			wantSubstring: fmt.Sprintf(cooldown.ErrFmtCooldownSecondsOnly, "global", 45),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.wantSubstring)
		})
	}
}

func TestErrOnCooldown_Is(t *testing.T) {
	err := cooldown.ErrOnCooldown{Action: "test", Remaining: time.Minute}

	assert.True(t, errors.Is(err, cooldown.ErrOnCooldown{}))
	assert.True(t, errors.Is(fmt.Errorf("say: %w", err), domain.ErrOnCooldown))
	assert.False(t, errors.Is(err, errors.New("other error")))
}

func intPtr(v int) *int { return &v }
