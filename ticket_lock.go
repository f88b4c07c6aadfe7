package spinlatch

import (
	"sync/atomic"
)

// TicketLock is a fair, FIFO (First-In-First-Out) spin-lock.
//
// Goroutines acquire the lock in the exact order they called Lock().
// A waiting goroutine spins, then backs off with short sleeps; it is never
// suspended on a runtime semaphore, so TicketLock is safe to use where the
// caller must remain runnable.
//
// It guards the tiny critical sections of [Box].
type TicketLock struct {
	_       noCopy
	next    atomic.Uint32
	serving atomic.Uint32
}

// Lock acquires the lock. Spins until the lock is available.
func (m *TicketLock) Lock() {
	my := m.next.Add(1) - 1
	var spins int
	for m.serving.Load() != my {
		delay(&spins)
	}
}

// TryLock acquires the lock only if nobody holds it or is queued for it.
func (m *TicketLock) TryLock() bool {
	s := m.serving.Load()
	return m.next.CompareAndSwap(s, s+1)
}

// Unlock releases the lock, handing it to the next ticket holder.
func (m *TicketLock) Unlock() {
	m.serving.Add(1)
}
