package blockingqueue

import (
	"context"
	"fmt"
	"time"
)

func Example_basic() {
	q := NewWithCapacity[string](8)
	go func() {
		// Producer
		_ = q.Put("a")
		_ = q.Put("b")
	}()

	// Consumer with timeout safety
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v1, _ := q.Take(ctx)
	v2, _ := q.Take(ctx)
	fmt.Println(v1, v2)
	// Output:
	// a b
}

func Example_capacity() {
	q := NewWithCapacity[int](2)

	// Put fails fast at capacity instead of blocking.
	fmt.Println(q.Put(1)) // true
	fmt.Println(q.Put(2)) // true
	fmt.Println(q.Put(3)) // false (full)
	fmt.Println(q.IsFull())

	// Taking one element frees a slot.
	q.TryTake()
	fmt.Println(q.Put(3))
	// Output:
	// true
	// true
	// false
	// true
	// true
}

func Example_errorHandling() {
	q := New[int]()

	// Context timeout leads to an error from Take.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := q.Take(ctx)
	fmt.Println(IsContextError(err))
	fmt.Println(err == ErrDeadlineExceeded || err == ErrCanceled)

	// TryTake is non-blocking and reports via ok.
	q.Put(1)
	if v, ok := q.TryTake(); ok {
		fmt.Println(v, ok)
	}
	if _, ok := q.TryTake(); !ok {
		fmt.Println("empty", ok)
	}
	// Output:
	// true
	// true
	// 1 true
	// empty false
}
