package spinlatch

import (
	"time"

	"github.com/llxisdsh/pb"
)

// LatchGroup is a set of CountdownLatches keyed by arbitrary values, all
// sharing the same goal.
//
// Features:
//   - Lazy: a key's latch is created on first use, by whichever of
//     CountDown or Await touches it first.
//   - Independent: counting down one key never affects another.
//
// Usage:
//
//	g := NewLatchGroup[string](3) // 3 replicas per shard
//	go func() { _ = g.CountDown("shard-7") }()
//	g.Await("shard-7")
//
// Released latches are kept, so a key can not be silently reused after it
// reached zero. Use Delete to drop a key explicitly.
type LatchGroup[K comparable] struct {
	_       noCopy
	goal    int
	options []func(*LatchConfig)
	m       pb.MapOf[K, *CountdownLatch]
}

// NewLatchGroup creates a group whose latches each wait for goal steps.
// The options apply to every latch of the group.
//
// panic if goal < 0.
func NewLatchGroup[K comparable](goal int, options ...func(*LatchConfig)) *LatchGroup[K] {
	if goal < 0 {
		panic("spinlatch: latch can not work with negative goal")
	}
	return &LatchGroup[K]{goal: goal, options: options}
}

// Latch returns the latch for key, creating it if needed.
func (g *LatchGroup[K]) Latch(key K) *CountdownLatch {
	l, _ := g.m.ProcessEntry(
		key,
		func(e *pb.EntryOf[K, *CountdownLatch]) (*pb.EntryOf[K, *CountdownLatch], *CountdownLatch, bool) {
			if e != nil {
				return e, e.Value, true
			}
			l := NewCountdownLatch(g.goal, g.options...)
			return &pb.EntryOf[K, *CountdownLatch]{Value: l}, l, false
		},
	)
	return l
}

// CountDown counts the latch for key down by one step.
// See CountdownLatch.CountDown.
func (g *LatchGroup[K]) CountDown(key K) error {
	return g.Latch(key).CountDown()
}

// Await waits until the latch for key has been counted down to zero.
func (g *LatchGroup[K]) Await(key K) {
	g.Latch(key).Await()
}

// AwaitTimeout waits until the latch for key has been counted down to zero,
// or returns an *ExpiredError after timeout.
func (g *LatchGroup[K]) AwaitTimeout(key K, timeout time.Duration) error {
	return g.Latch(key).AwaitTimeout(timeout)
}

// Count returns the steps still outstanding for key.
// Keys that were never touched report the full goal without being created.
func (g *LatchGroup[K]) Count(key K) int64 {
	l, ok := g.m.ProcessEntry(
		key,
		func(e *pb.EntryOf[K, *CountdownLatch]) (*pb.EntryOf[K, *CountdownLatch], *CountdownLatch, bool) {
			if e != nil {
				return e, e.Value, true
			}
			return nil, nil, false
		},
	)
	if !ok {
		return int64(g.goal)
	}
	return l.Count()
}

// Delete forgets the latch for key. Goroutines already waiting on it keep
// waiting on the old latch; the next use of key creates a fresh one.
func (g *LatchGroup[K]) Delete(key K) {
	g.m.Delete(key)
}
