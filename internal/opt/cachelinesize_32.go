//go:build spinlatch_cachelinesize_32

package opt

// CacheLineSize_ is forced to 32 bytes via the spinlatch_cachelinesize_32 build tag.
const CacheLineSize_ = 32
