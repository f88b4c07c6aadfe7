//go:build spinlatch_enable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// PaddedInt64_ is an atomic counter shared by spinning readers.
// Padding is force-enabled via the spinlatch_enable_padding build tag.
// Use: go build -tags=spinlatch_enable_padding
type PaddedInt64_ struct {
	atomic.Int64
	_ [(CacheLineSize_ - unsafe.Sizeof(int64(0))%CacheLineSize_) % CacheLineSize_]byte
}
