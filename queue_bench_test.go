package pendingqueue

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/xyhelper/pendingqueue/blockingqueue"
)

func BenchmarkOffer(b *testing.B) {
	q := New[int](blockingqueue.New[int]())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Offer(i)
	}
}

func BenchmarkOfferPoll(b *testing.B) {
	q := New[int](
		blockingqueue.New[int](),
		WithMaxBlockingTime(time.Millisecond),
	)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Offer(i)
		q.Poll(ctx)
	}
}

// Benchmark notification fan-out across a populated registry.
func BenchmarkNotify(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("listeners=%d", n), func(b *testing.B) {
			q := New[int](blockingqueue.New[int]())
			var sink atomic.Int64
			for i := 0; i < n; i++ {
				q.RegisterEmptyToNotEmptyListener(fmt.Sprintf("l%d", i), func() { sink.Add(1) })
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q.NotifyEmptyToNotEmptyListeners()
			}
		})
	}
}
