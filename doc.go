// Package pendingqueue provides a listenable decorator for a bounded,
// blocking, multi-producer/multi-consumer FIFO queue.
//
// ListenableQueue wraps an externally supplied blocking queue (anything
// satisfying the Blocking interface, such as a blockingqueue.Queue) and adds
// edge-triggered notifications for the four logical state transitions:
// empty→non-empty, non-empty→empty, full→not-full, and not-full→full.
// Pipeline stages register callbacks per transition kind and use them to
// drive backpressure and wake-up logic in adjacent stages without polling.
//
// Offer never blocks: it fails fast when the underlying queue is at
// capacity. Poll blocks for at most the configured maximum blocking time,
// which keeps consumers responsive to shutdown signaling. Cancellation of
// the caller's context during a blocked Poll is absorbed and treated like a
// timeout; it is logged and never surfaced as an error.
//
// Notifications are advisory wake-up hints, not linearizable observations;
// see the consistency notes in this package for the exact contract.
package pendingqueue
