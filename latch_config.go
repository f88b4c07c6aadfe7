package spinlatch

import (
	"log/slog"
	"time"

	"github.com/coder/quartz"
)

// ============================================================================
// Configuration
// ============================================================================

// LatchConfig defines configurable options for CountdownLatch and
// LatchGroup initialization.
type LatchConfig struct {
	// pollInterval is how long a waiter sleeps between two reads of the
	// counter once its active spin budget is spent.
	// Zero or negative yields the processor instead of sleeping.
	pollInterval time.Duration

	// busySpin keeps waiters in a tight re-check loop that only ever
	// yields the processor, never sleeps. Lowest wake-up latency, one
	// busy CPU per waiter.
	busySpin bool

	// clock measures elapsed time for AwaitTimeout.
	// The real clock reads the monotonic clock, so wall-clock adjustments
	// neither extend nor shorten a wait.
	clock quartz.Clock

	// logger receives debug-time diagnostics (spinlatch_debug builds only).
	logger *slog.Logger
}

// WithPollInterval sets the re-check interval used by waiters after their
// spin budget is spent. The default is 500µs.
func WithPollInterval(d time.Duration) func(*LatchConfig) {
	return func(c *LatchConfig) {
		c.pollInterval = d
	}
}

// WithBusySpin makes waiters poll in a tight loop without ever sleeping.
func WithBusySpin() func(*LatchConfig) {
	return func(c *LatchConfig) {
		c.busySpin = true
	}
}

// WithClock sets the clock used to measure AwaitTimeout deadlines.
// A nil clock is ignored.
func WithClock(clock quartz.Clock) func(*LatchConfig) {
	return func(c *LatchConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger for debug-time diagnostics.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) func(*LatchConfig) {
	return func(c *LatchConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newLatchConfig(options []func(*LatchConfig)) LatchConfig {
	c := LatchConfig{
		pollInterval: defaultPollInterval,
	}
	for _, o := range options {
		o(&c)
	}
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

func (c *LatchConfig) poller() poller {
	return poller{interval: c.pollInterval, busy: c.busySpin}
}
