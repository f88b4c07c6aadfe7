//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !spinlatch_disable_padding && !spinlatch_enable_padding

package opt

import (
	"sync/atomic"
)

// PaddedInt64_ is an atomic counter shared by spinning readers.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
type PaddedInt64_ struct {
	atomic.Int64
}
