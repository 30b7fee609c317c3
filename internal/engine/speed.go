package engine

import (
	"fmt"
	"time"
)

// SpeedTier is a named tick-interval configuration selectable by the player.
type SpeedTier string

const (
	SpeedSlow   SpeedTier = "slow"
	SpeedNormal SpeedTier = "normal"
	SpeedFast   SpeedTier = "fast"
	SpeedInsane SpeedTier = "insane"
)

// Interval returns the tick period for this tier.
func (t SpeedTier) Interval() time.Duration {
	switch t {
	case SpeedSlow:
		return 300 * time.Millisecond
	case SpeedFast:
		return 150 * time.Millisecond
	case SpeedInsane:
		return 100 * time.Millisecond
	default:
		return 200 * time.Millisecond
	}
}

// Valid reports whether t is one of the recognized tiers.
func (t SpeedTier) Valid() bool {
	switch t {
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedInsane:
		return true
	}
	return false
}

// Speeds returns all tiers ordered from slowest to fastest.
func Speeds() []SpeedTier {
	return []SpeedTier{SpeedSlow, SpeedNormal, SpeedFast, SpeedInsane}
}

// ParseSpeed converts a config/CLI string to a SpeedTier.
// Unknown names are a configuration error and fail fast.
func ParseSpeed(s string) (SpeedTier, error) {
	t := SpeedTier(s)
	if !t.Valid() {
		return "", fmt.Errorf("engine: unknown speed tier %q (want slow, normal, fast or insane)", s)
	}
	return t, nil
}
