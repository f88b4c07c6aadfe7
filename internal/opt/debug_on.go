//go:build spinlatch_debug

package opt

// Debug_ enables debug-time diagnostics (misuse warnings).
const Debug_ = true
