// Package clock provides the fixed-interval tick source that drives the
// snake engine. The clock owns no game state; it only emits tick signals
// at the period of the selected speed tier.
package clock

import (
	"sync"
	"time"

	"github.com/vovakirdan/termsnake/internal/engine"
)

// Clock is a repeating timer with a swappable interval. The output channel
// is closed on Stop so consumers can detect shutdown.
type Clock struct {
	mu       sync.Mutex
	ticker   *time.Ticker
	interval time.Duration
	out      chan time.Time
	done     chan struct{}
	stopOnce sync.Once
}

// New starts a clock ticking at the given tier's interval.
func New(tier engine.SpeedTier) *Clock {
	interval := tier.Interval()
	c := &Clock{
		ticker:   time.NewTicker(interval),
		interval: interval,
		out:      make(chan time.Time, 1),
		done:     make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *Clock) run() {
	for {
		select {
		case t := <-c.ticker.C:
			// Drop the tick if the consumer is still busy with the
			// previous one; a tick must never queue up.
			select {
			case c.out <- t:
			default:
			}
		case <-c.done:
			close(c.out)
			return
		}
	}
}

// C returns the tick channel. It is closed when the clock is stopped.
func (c *Clock) C() <-chan time.Time {
	return c.out
}

// SetSpeed swaps the tick interval in place. Ticker.Reset installs the new
// period atomically, so the swap neither double-fires nor drops a tick.
func (c *Clock) SetSpeed(tier engine.SpeedTier) {
	c.mu.Lock()
	defer c.mu.Unlock()

	interval := tier.Interval()
	if interval == c.interval {
		return
	}
	c.interval = interval
	c.ticker.Reset(interval)
}

// Interval returns the current tick period.
func (c *Clock) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// Stop halts the clock and closes the tick channel. Safe to call twice.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		c.ticker.Stop()
		close(c.done)
	})
}
