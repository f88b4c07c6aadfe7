//go:build spinlatch_disable_padding

package opt

import (
	"sync/atomic"
)

// PaddedInt64_ is an atomic counter shared by spinning readers.
// Padding is force-disabled via the spinlatch_disable_padding build tag.
// Use: go build -tags=spinlatch_disable_padding
type PaddedInt64_ struct {
	atomic.Int64
}
