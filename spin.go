package spinlatch

import (
	"runtime"
	"time"
	_ "unsafe" // for linkname
)

// defaultPollInterval is the re-check interval once the active spin budget is
// spent. time.Sleep with a sub-millisecond duration works effectively as
// backoff under high concurrency.
// The 500µs duration is derived from Facebook/folly's implementation:
// https://github.com/facebook/folly/blob/main/folly/synchronization/detail/Sleeper.h
const defaultPollInterval = 500 * time.Microsecond

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// poller paces a wait loop that re-reads shared state.
// The goroutine stays runnable the whole time; it is never parked on a
// runtime semaphore.
type poller struct {
	spins    int
	interval time.Duration
	busy     bool
}

// pause is called between two reads of the polled condition.
func (p *poller) pause() {
	if trySpin(&p.spins) {
		return
	}
	p.spins = 0
	if p.busy || p.interval <= 0 {
		runtime.Gosched()
		return
	}
	time.Sleep(p.interval)
}

func trySpin(spins *int) bool {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return true
	}
	return false
}

func delay(spins *int) {
	if trySpin(spins) {
		return
	}
	*spins = 0
	time.Sleep(defaultPollInterval)
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//goland:noinspection ALL
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()
