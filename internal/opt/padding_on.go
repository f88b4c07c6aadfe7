//go:build !(amd64 || 386 || arm || mips || mipsle || wasm) && !spinlatch_disable_padding && !spinlatch_enable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// PaddedInt64_ is an atomic counter shared by spinning readers.
// Padding is automatically enabled for architectures that are NOT:
// - amd64 (x86_64): Hardware optimizations often make padding less critical
// - 32-bit architectures (386, arm, mips, mipsle, wasm): Smaller cache lines/memory constraints
//
// Waiters hammer the counter with loads while CountDown issues CAS on it,
// so it gets a cache line of its own on:
// arm64, s390x, ppc64, ppc64le, riscv64, loong64, mips64, mips64le, etc.
type PaddedInt64_ struct {
	atomic.Int64
	_ [(CacheLineSize_ - unsafe.Sizeof(int64(0))%CacheLineSize_) % CacheLineSize_]byte
}
