package spinlatch

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAlreadyZero is returned by CountDown when the latch was already
	// counted down to zero, i.e. more steps were signaled than the goal.
	ErrAlreadyZero = errors.New("spinlatch: latch has already been counted down to zero")

	// ErrExpired matches every *ExpiredError via errors.Is.
	ErrExpired = errors.New("spinlatch: latch wait expired")
)

// ExpiredError is returned by AwaitTimeout when the latch was not released
// within the allotted time.
type ExpiredError struct {
	// Deadline is the timeout the caller asked for.
	Deadline time.Duration
	// Waited is the time actually spent waiting. Always greater than Deadline.
	Waited time.Duration
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("spinlatch: waited for %v, limit was %v", e.Waited, e.Deadline)
}

func (e *ExpiredError) Is(target error) bool {
	return target == ErrExpired
}
