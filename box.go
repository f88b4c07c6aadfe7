package spinlatch

// Box is a mutable cell that gives goroutines indivisible read-modify-write
// access to a single value of type T.
//
// Every operation runs inside one [TicketLock] critical section, so
// an arbitrary mutation function can be applied atomically without any
// caller-side locking.
//
// It is zero-value usable (holds the zero T).
//
// Example:
//
//	var hits Box[int]
//	n := hits.Mutate(func(v *int) { *v++ })
type Box[T any] struct {
	_     noCopy
	mu    TicketLock
	value T
}

// NewBox returns a Box holding v.
func NewBox[T any](v T) *Box[T] {
	return &Box[T]{value: v}
}

// Load returns the current value.
func (b *Box[T]) Load() T {
	b.mu.Lock()
	v := b.value
	b.mu.Unlock()
	return v
}

// Store replaces the current value.
func (b *Box[T]) Store(v T) {
	b.mu.Lock()
	b.value = v
	b.mu.Unlock()
}

// Mutate applies fn to the value in place and returns the resulting value.
// fn must not call back into the same Box.
func (b *Box[T]) Mutate(fn func(v *T)) T {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.value)
	return b.value
}
