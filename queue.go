package pendingqueue

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Blocking is the storage contract ListenableQueue decorates. The queue is
// externally constructed and owned; ListenableQueue never creates, resizes,
// or inspects its elements.
//
// Put must not block: it reports false when the queue is at capacity. Take
// blocks until an element is available or ctx is done, returning ctx.Err()
// in the latter case. For an unbounded implementation Put always reports
// true, so full/not-full notifications never fire.
type Blocking[E any] interface {
	Put(v E) bool
	Take(ctx context.Context) (E, error)
	IsEmpty() bool
	Len() int
	Clear()
}

// ListenableQueue decorates a Blocking queue with edge-triggered transition
// notifications. All methods are safe for concurrent use by any number of
// producers and consumers; listeners may be registered and removed at any
// time, including while notifications are being delivered.
type ListenableQueue[E any] struct {
	inner Blocking[E]

	maxBlockingTime time.Duration
	logger          *slog.Logger
	metrics         *queueMetrics

	emptyToNotEmpty listenerRegistry
	notEmptyToEmpty listenerRegistry
	fullToNotFull   listenerRegistry
	notFullToFull   listenerRegistry

	// full approximates "the queue was last observed full". It is maintained
	// purely through compare-and-swap on Offer/Poll outcomes, never derived
	// from a live capacity check, so each full↔not-full crossing is reported
	// at most once even under racing callers.
	full atomic.Bool
}

// New creates a ListenableQueue over the given blocking queue.
func New[E any](inner Blocking[E], opts ...Option) *ListenableQueue[E] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ListenableQueue[E]{
		inner:           inner,
		maxBlockingTime: cfg.maxBlockingTime,
		logger:          cfg.logger,
		metrics:         newQueueMetrics(cfg.meter),
	}
}

// RegisterEmptyToNotEmptyListener adds (or replaces) the callback fired when
// the queue goes from empty to non-empty. Returns the queue for chaining.
func (q *ListenableQueue[E]) RegisterEmptyToNotEmptyListener(id string, fn Listener) *ListenableQueue[E] {
	q.emptyToNotEmpty.register(id, fn)
	return q
}

// RemoveEmptyToNotEmptyListener removes the callback under id, if any.
func (q *ListenableQueue[E]) RemoveEmptyToNotEmptyListener(id string) {
	q.emptyToNotEmpty.remove(id)
}

// NotifyEmptyToNotEmptyListeners fires all empty→non-empty callbacks.
func (q *ListenableQueue[E]) NotifyEmptyToNotEmptyListeners() {
	q.emptyToNotEmpty.notify()
	q.metrics.recordTransition(kindEmptyToNotEmpty)
}

// RegisterNotEmptyToEmptyListener adds (or replaces) the callback fired when
// the queue goes from non-empty to empty. Returns the queue for chaining.
func (q *ListenableQueue[E]) RegisterNotEmptyToEmptyListener(id string, fn Listener) *ListenableQueue[E] {
	q.notEmptyToEmpty.register(id, fn)
	return q
}

// RemoveNotEmptyToEmptyListener removes the callback under id, if any.
func (q *ListenableQueue[E]) RemoveNotEmptyToEmptyListener(id string) {
	q.notEmptyToEmpty.remove(id)
}

// NotifyNotEmptyToEmptyListeners fires all non-empty→empty callbacks.
func (q *ListenableQueue[E]) NotifyNotEmptyToEmptyListeners() {
	q.notEmptyToEmpty.notify()
	q.metrics.recordTransition(kindNotEmptyToEmpty)
}

// RegisterFullToNotFullListener adds (or replaces) the callback fired when
// the queue goes from full to not-full. Returns the queue for chaining.
func (q *ListenableQueue[E]) RegisterFullToNotFullListener(id string, fn Listener) *ListenableQueue[E] {
	q.fullToNotFull.register(id, fn)
	return q
}

// RemoveFullToNotFullListener removes the callback under id, if any.
func (q *ListenableQueue[E]) RemoveFullToNotFullListener(id string) {
	q.fullToNotFull.remove(id)
}

// NotifyFullToNotFullListeners fires all full→not-full callbacks.
func (q *ListenableQueue[E]) NotifyFullToNotFullListeners() {
	q.fullToNotFull.notify()
	q.metrics.recordTransition(kindFullToNotFull)
}

// RegisterNotFullToFullListener adds (or replaces) the callback fired when
// the queue goes from not-full to full. Returns the queue for chaining.
func (q *ListenableQueue[E]) RegisterNotFullToFullListener(id string, fn Listener) *ListenableQueue[E] {
	q.notFullToFull.register(id, fn)
	return q
}

// RemoveNotFullToFullListener removes the callback under id, if any.
func (q *ListenableQueue[E]) RemoveNotFullToFullListener(id string) {
	q.notFullToFull.remove(id)
}

// NotifyNotFullToFullListeners fires all not-full→full callbacks.
func (q *ListenableQueue[E]) NotifyNotFullToFullListeners() {
	q.notFullToFull.notify()
	q.metrics.recordTransition(kindNotFullToFull)
}

// Offer attempts a non-blocking insert and reports whether the element was
// added. A successful insert into a queue observed empty fires the
// empty→non-empty listeners; a rejected insert fires the not-full→full
// listeners for exactly one of the racing producers.
func (q *ListenableQueue[E]) Offer(v E) bool {
	wasEmpty := q.inner.IsEmpty()
	added := q.inner.Put(v)

	if added {
		// Not "Len() == 1" after the insert: the emptiness check and the
		// insert are separate steps, and coupling them would require a lock
		// shared with the queue internals. The edge signal is best-effort.
		if wasEmpty {
			q.NotifyEmptyToNotEmptyListeners()
		}
	} else if q.full.CompareAndSwap(false, true) {
		q.NotifyNotFullToFullListeners()
	}

	q.metrics.recordOffer(added)
	return added
}

// Poll removes and returns the head element, blocking up to the configured
// maximum blocking time. The second result is false when no element was
// obtained within that window.
//
// Cancellation of ctx while blocked is absorbed: it is logged, treated
// exactly like a timeout, and ctx remains cancelled for the surrounding code
// to observe. Coming up empty after a non-empty observation fires the
// non-empty→empty listeners; a successful removal fires the full→not-full
// listeners for exactly one of the racing consumers.
func (q *ListenableQueue[E]) Poll(ctx context.Context) (E, bool) {
	wasEmpty := q.inner.IsEmpty()

	waitCtx, cancel := context.WithTimeout(ctx, q.maxBlockingTime)
	v, err := q.inner.Take(waitCtx)
	cancel()

	if err != nil {
		status := pollTimeout
		if ctx.Err() != nil {
			status = pollCanceled
			q.logger.Info("pending queue poll canceled",
				slog.Any("cause", ctx.Err()),
			)
		}
		// Same best-effort rationale as Offer: not "Len() == 0".
		if !wasEmpty {
			q.NotifyNotEmptyToEmptyListeners()
		}
		q.metrics.recordPoll(status)
		var zero E
		return zero, false
	}

	if q.full.CompareAndSwap(true, false) {
		q.NotifyFullToNotFullListeners()
	}
	q.metrics.recordPoll(pollOK)
	return v, true
}

// Clear discards all queued elements. Clearing is an administrative reset,
// not a consumption event: no transition notifications fire.
func (q *ListenableQueue[E]) Clear() {
	q.inner.Clear()
}

// Len returns the queue's current occupancy. The value is advisory; it may
// change the instant the call returns.
func (q *ListenableQueue[E]) Len() int {
	return q.inner.Len()
}

// IsEmpty reports whether the queue is currently empty. Advisory, like Len.
func (q *ListenableQueue[E]) IsEmpty() bool {
	return q.inner.IsEmpty()
}
