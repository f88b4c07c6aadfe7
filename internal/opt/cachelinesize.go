//go:build !spinlatch_cachelinesize_32 && !spinlatch_cachelinesize_64 && !spinlatch_cachelinesize_128 && !spinlatch_cachelinesize_256

// Package opt holds build-tag selected constants and layouts.
package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is the padding unit for counters that waiters poll.
// It follows the target architecture via golang.org/x/sys/cpu unless one of
// the spinlatch_cachelinesize_* tags pins it.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})
