package spinlatch

import (
	"time"

	"github.com/llxisdsh/spinlatch/internal/opt"
)

// CountdownLatch is a single-use barrier that releases its waiters once a
// fixed number of steps have been counted down.
//
// Behavior:
//   - CountDown(): records one step. Never blocks.
//   - Await(): returns once every step has been recorded.
//   - AwaitTimeout(d): like Await, but gives up after d.
//
// Waiters poll the counter (spin, then short sleeps) instead of being parked
// by the runtime, so a waiting goroutine stays runnable and costs CPU for as
// long as it waits. Once released, the latch stays released forever; there is
// no reset.
//
// A CountdownLatch must not be copied after first use.
type CountdownLatch struct {
	_ noCopy
	// counter holds the number of outstanding steps.
	// It only ever decreases and never goes below zero.
	counter opt.PaddedInt64_
	cfg     LatchConfig
}

// NewCountdownLatch creates a latch that waits for start steps.
//
// panic if start < 0: a negative goal can never be reached.
//
// A latch with goal 0 is released from the start. Builds with the
// spinlatch_debug tag log a warning for it, as it is most likely a mistake.
func NewCountdownLatch(start int, options ...func(*LatchConfig)) *CountdownLatch {
	if start < 0 {
		panic("spinlatch: latch can not work with negative goal")
	}
	l := &CountdownLatch{cfg: newLatchConfig(options)}
	if opt.Debug_ && start == 0 {
		l.cfg.logger.Warn("spinlatch: latch with goal 0 will have no effect")
	}
	l.counter.Store(int64(start))
	return l
}

// CountDown counts the latch down by one step.
//
// It returns ErrAlreadyZero if the latch had already been counted down to
// zero. The counter is left untouched in that case, so other participants
// never see it go negative.
func (l *CountdownLatch) CountDown() error {
	for {
		n := l.counter.Load()
		if n <= 0 {
			return ErrAlreadyZero
		}
		if l.counter.CompareAndSwap(n, n-1) {
			return nil
		}
	}
}

// Await does not return before the latch has been counted down to zero.
// If it already has, Await returns immediately.
func (l *CountdownLatch) Await() {
	if l.counter.Load() <= 0 {
		return
	}
	p := l.cfg.poller()
	for l.counter.Load() > 0 {
		p.pause()
	}
}

// AwaitTimeout is like Await, but aborts waiting once more than timeout has
// elapsed, returning an *ExpiredError.
//
// The counter is always checked before the clock: a released latch returns
// nil even for a zero or negative timeout. Otherwise a timeout <= 0 expires on
// the first elapsed-time check that reads more than the timeout.
func (l *CountdownLatch) AwaitTimeout(timeout time.Duration) error {
	clock := l.cfg.clock
	start := clock.Now("CountdownLatch", "AwaitTimeout")
	p := l.cfg.poller()
	for l.counter.Load() > 0 {
		if waited := clock.Since(start, "CountdownLatch", "AwaitTimeout"); waited > timeout {
			return &ExpiredError{Deadline: timeout, Waited: waited}
		}
		p.pause()
	}
	return nil
}

// Count returns the number of steps still outstanding.
func (l *CountdownLatch) Count() int64 {
	return l.counter.Load()
}

// Released reports whether the latch has been counted down to zero,
// i.e. whether Await would return immediately.
func (l *CountdownLatch) Released() bool {
	return l.counter.Load() <= 0
}
