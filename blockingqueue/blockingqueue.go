package blockingqueue

import (
	"context"
	"errors"
	"sync"
)

// Queue is a blocking, concurrency-safe FIFO with an optional capacity
// bound. Put never blocks: when the queue is at capacity it reports false
// and the caller decides how to back off. Take blocks until an element is
// available or the context is done.
//
// All methods are safe for concurrent use by multiple goroutines. The zero
// value is not ready for use; construct via New or NewWithCapacity.
type Queue[E any] struct {
	mu       sync.Mutex
	cv       *sync.Cond
	data     []E
	capacity int // 0 means unbounded
}

// New creates a new unbounded blocking queue.
func New[E any]() *Queue[E] {
	b := &Queue[E]{data: make([]E, 0)}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// NewWithCapacity creates a new blocking queue bounded at capacity elements.
// A non-positive capacity means the queue is unbounded.
func NewWithCapacity[E any](capacity int) *Queue[E] {
	if capacity < 0 {
		capacity = 0
	}
	b := &Queue[E]{
		data:     make([]E, 0, capacity),
		capacity: capacity,
	}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Put appends v to the tail without blocking.
//
// Returns true if the value was added, or false when the queue is at
// capacity. Wakes waiters only when an element is actually added.
// Amortized complexity: O(1).
func (b *Queue[E]) Put(v E) bool {
	b.mu.Lock()
	if b.capacity > 0 && len(b.data) >= b.capacity {
		b.mu.Unlock()
		return false
	}
	b.data = append(b.data, v)
	b.cv.Broadcast()
	b.mu.Unlock()
	return true
}

// TryTake removes and returns the head value without blocking.
// ok is false if the queue is empty.
func (b *Queue[E]) TryTake() (v E, ok bool) {
	b.mu.Lock()
	v, ok = b.dequeueLocked()
	b.mu.Unlock()
	return
}

// Take blocks until an element is available or ctx is done. On success
// returns (value, nil). On cancellation or deadline expiry returns the zero
// value and ctx.Err().
func (b *Queue[E]) Take(ctx context.Context) (E, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b.mu.Lock()
	// Fast path
	if v, ok := b.dequeueLocked(); ok {
		b.mu.Unlock()
		return v, nil
	}
	// Wait with context cancellation. We spawn a short-lived watcher that
	// broadcasts on cancellation to wake Wait.
	for {
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				b.mu.Lock()
				b.cv.Broadcast()
				b.mu.Unlock()
			case <-done:
			}
		}()

		b.cv.Wait() // releases and re-acquires b.mu
		close(done)

		if v, ok := b.dequeueLocked(); ok {
			b.mu.Unlock()
			return v, nil
		}
		if err := ctx.Err(); err != nil {
			b.mu.Unlock()
			var zero E
			return zero, err
		}
	}
}

// dequeueLocked removes the head value. Callers must hold b.mu.
func (b *Queue[E]) dequeueLocked() (E, bool) {
	var zero E
	if len(b.data) == 0 {
		return zero, false
	}
	v := b.data[0]
	// Clear the slot so the element is not retained, then reslice to avoid
	// O(n) element moves; GC reclaims the older head when needed.
	b.data[0] = zero
	b.data = b.data[1:]
	return v, true
}

// Peek returns the head value without removing it.
// ok is false when the queue is empty. Complexity: O(1).
func (b *Queue[E]) Peek() (v E, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var zero E
	if len(b.data) == 0 {
		return zero, false
	}
	return b.data[0], true
}

// Len returns the number of elements currently queued.
// Complexity: O(1). Safe for concurrent use.
func (b *Queue[E]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Cap returns the configured capacity bound, or 0 when unbounded.
func (b *Queue[E]) Cap() int {
	return b.capacity
}

// IsEmpty reports whether the queue is empty.
// Complexity: O(1). Equivalent to Len() == 0.
func (b *Queue[E]) IsEmpty() bool {
	return b.Len() == 0
}

// IsFull reports whether the queue is at capacity.
// Always false for an unbounded queue.
func (b *Queue[E]) IsFull() bool {
	if b.capacity <= 0 {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data) >= b.capacity
}

// Clear removes all elements from the queue. Complexity: O(n) to release
// element references.
func (b *Queue[E]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	var zero E
	for i := range b.data {
		b.data[i] = zero
	}
	b.data = b.data[:0]
}

// ToSlice returns a copy of the queue's contents in FIFO order.
// Complexity: O(n). The returned slice is independent of the queue.
func (b *Queue[E]) ToSlice() []E {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]E, len(b.data))
	copy(out, b.data)
	return out
}

// ErrCanceled is returned by Take when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is returned by Take when the context deadline expires.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
