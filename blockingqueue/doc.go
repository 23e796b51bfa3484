// Package blockingqueue provides a bounded, blocking FIFO queue for opaque
// element types.
//
// The queue is concurrency-safe: all exported methods use internal locking
// and may be called from multiple goroutines. Construct a queue with New
// (unbounded) or NewWithCapacity (bounded). Put fails fast when the queue is
// at capacity; Take blocks until an element arrives or the caller's context
// is done. Queue satisfies the pendingqueue.Blocking interface and is the
// usual storage behind a pendingqueue.ListenableQueue.
package blockingqueue
