package cooldown

import "time"

// Config holds cooldown tracker configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// TickDuration is the wall-clock length of one game tick, used for retry hints
	TickDuration time.Duration

	// Defaults maps action keys to their default length in ticks
	Defaults map[string]int
}

// DefaultTicks returns the configured default for an action, or 0 when none is set
func (c Config) DefaultTicks(action string) int {
	if c.Defaults == nil {
		return 0
	}
	return c.Defaults[action]
}

func (c Config) tickDuration() time.Duration {
	if c.TickDuration <= 0 {
		return DefaultTickDuration
	}
	return c.TickDuration
}
