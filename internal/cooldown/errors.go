package cooldown

import (
	"fmt"
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// ErrOnCooldown is returned when an action is still gated
type ErrOnCooldown struct {
	Action    string
	Ticks     int
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	total := int(e.Remaining.Seconds())
	minutes := total / SecondsPerMinute
	seconds := total % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
