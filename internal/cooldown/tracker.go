package cooldown

import (
	"log/slog"
	"sync"
	"time"
)

// Tracker gates rate-limited actions per actor with tick countdowns.
// An entry is Idle until added, counts down on Tick, and is evicted at zero.
type Tracker struct {
	mu      sync.Mutex
	config  Config
	entries map[string]map[string]int
}

// NewTracker creates a tracker with no active entries
func NewTracker(config Config) *Tracker {
	return &Tracker{
		config:  config,
		entries: make(map[string]map[string]int),
	}
}

// TicksLeft returns the remaining ticks for the pair, 0 when idle
func (t *Tracker) TicksLeft(actor, action string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries[actor][action]
}

// Add starts a countdown. An explicit duration wins; otherwise the configured
// default is used only when useDefault is set. With neither, Add is a no-op.
func (t *Tracker) Add(actor, action string, explicit *int, useDefault bool) {
	var ticks int
	switch {
	case explicit != nil:
		ticks = *explicit
	case useDefault:
		ticks = t.config.DefaultTicks(action)
	default:
		slog.Debug(LogMsgAddIgnored, "actor", actor, "action", action)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if ticks <= 0 {
		t.deleteLocked(actor, action)
		return
	}
	actions, ok := t.entries[actor]
	if !ok {
		actions = make(map[string]int)
		t.entries[actor] = actions
	}
	actions[action] = ticks
}

// Check returns ErrOnCooldown when the pair is active
func (t *Tracker) Check(actor, action string) error {
	if t.config.DevMode {
		slog.Debug(LogMsgDevModeBypass, "actor", actor, "action", action)
		return nil
	}
	ticks := t.TicksLeft(actor, action)
	if ticks <= 0 {
		return nil
	}
	return ErrOnCooldown{
		Action:    action,
		Ticks:     ticks,
		Remaining: time.Duration(ticks) * t.config.tickDuration(),
	}
}

// Reset clears a single entry (admin/testing)
func (t *Tracker) Reset(actor, action string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deleteLocked(actor, action)
}

// Tick decrements every active entry and evicts the ones reaching zero
func (t *Tracker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for actor, actions := range t.entries {
		for action, ticks := range actions {
			if ticks <= 1 {
				delete(actions, action)
				continue
			}
			actions[action] = ticks - 1
		}
		if len(actions) == 0 {
			delete(t.entries, actor)
		}
	}
}

// Active returns the number of actors with at least one running countdown
func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Tracker) deleteLocked(actor, action string) {
	actions, ok := t.entries[actor]
	if !ok {
		return
	}
	delete(actions, action)
	if len(actions) == 0 {
		delete(t.entries, actor)
	}
}
