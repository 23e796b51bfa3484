package pendingqueue

import (
	"context"
	"fmt"
	"time"

	"github.com/xyhelper/pendingqueue/blockingqueue"
)

// Example wiring a bounded queue between two pipeline stages: the consumer
// wakes on empty→non-empty, the producer backs off on not-full→full and
// resumes on full→not-full.
func Example_backpressure() {
	q := New[string](
		blockingqueue.NewWithCapacity[string](2),
		WithMaxBlockingTime(10*time.Millisecond),
	)
	q.RegisterEmptyToNotEmptyListener("consumer", func() { fmt.Println("wake: queue has work") }).
		RegisterNotEmptyToEmptyListener("consumer", func() { fmt.Println("idle: queue drained") }).
		RegisterNotFullToFullListener("producer", func() { fmt.Println("backpressure: queue full") }).
		RegisterFullToNotFullListener("producer", func() { fmt.Println("resume: slot available") })

	ctx := context.Background()

	fmt.Println(q.Offer("a"))
	fmt.Println(q.Offer("b"))
	fmt.Println(q.Offer("c")) // rejected at capacity

	v, _ := q.Poll(ctx)
	fmt.Println(v)
	v, _ = q.Poll(ctx)
	fmt.Println(v)

	// Output:
	// wake: queue has work
	// true
	// true
	// backpressure: queue full
	// false
	// resume: slot available
	// a
	// b
}

// Example showing that re-registering an id replaces the callback and that
// removal silences it.
func Example_registration() {
	q := New[int](blockingqueue.New[int]())

	q.RegisterEmptyToNotEmptyListener("stage", func() { fmt.Println("first") })
	q.RegisterEmptyToNotEmptyListener("stage", func() { fmt.Println("second") })
	q.NotifyEmptyToNotEmptyListeners()

	q.RemoveEmptyToNotEmptyListener("stage")
	q.NotifyEmptyToNotEmptyListeners()
	fmt.Println("done")
	// Output:
	// second
	// done
}

// Example showing that Clear is an administrative reset: no transition
// notifications fire.
func Example_clear() {
	q := New[int](blockingqueue.NewWithCapacity[int](4))
	q.Offer(1)
	q.Offer(2)

	q.RegisterNotEmptyToEmptyListener("stage", func() { fmt.Println("drained") })
	q.Clear()
	fmt.Println(q.Len())
	// Output:
	// 0
}
