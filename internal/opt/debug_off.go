//go:build !spinlatch_debug

package opt

// Debug_ enables debug-time diagnostics (misuse warnings).
// Release builds leave it off; use -tags=spinlatch_debug to turn it on.
const Debug_ = false
