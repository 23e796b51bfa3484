package pendingqueue

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name for pendingqueue metrics.
const meterName = "github.com/xyhelper/pendingqueue"

// Transition kinds as they appear in the "kind" metric attribute.
const (
	kindEmptyToNotEmpty = "empty_to_not_empty"
	kindNotEmptyToEmpty = "not_empty_to_empty"
	kindFullToNotFull   = "full_to_not_full"
	kindNotFullToFull   = "not_full_to_full"
)

// Poll outcomes as they appear in the "status" metric attribute.
const (
	pollOK       = "ok"
	pollTimeout  = "timeout"
	pollCanceled = "canceled"
)

// queueMetrics holds the instruments recorded on the Offer/Poll hot paths.
//
// Instruments:
//   - pendingqueue.transitions (Int64Counter): notification events delivered,
//     with attribute: kind
//   - pendingqueue.offers (Int64Counter): Offer calls,
//     with attribute: status ("ok" or "rejected")
//   - pendingqueue.polls (Int64Counter): Poll calls,
//     with attribute: status ("ok", "timeout" or "canceled")
type queueMetrics struct {
	transitions metric.Int64Counter
	offers      metric.Int64Counter
	polls       metric.Int64Counter
}

// newQueueMetrics creates the instruments once at queue construction time.
// OTel instruments are safe for concurrent use. On error the API returns
// noop instruments, so recording degrades gracefully.
func newQueueMetrics(meter metric.Meter) *queueMetrics {
	if meter == nil {
		meter = otel.Meter(meterName)
	}

	transitions, tErr := meter.Int64Counter(
		"pendingqueue.transitions",
		metric.WithDescription("Number of state-transition notification events delivered"),
		metric.WithUnit("{notification}"),
	)
	_ = tErr // noop fallback guaranteed by OTel API contract

	offers, oErr := meter.Int64Counter(
		"pendingqueue.offers",
		metric.WithDescription("Number of Offer attempts"),
		metric.WithUnit("{call}"),
	)
	_ = oErr // noop fallback guaranteed by OTel API contract

	polls, pErr := meter.Int64Counter(
		"pendingqueue.polls",
		metric.WithDescription("Number of Poll attempts"),
		metric.WithUnit("{call}"),
	)
	_ = pErr // noop fallback guaranteed by OTel API contract

	return &queueMetrics{
		transitions: transitions,
		offers:      offers,
		polls:       polls,
	}
}

func (m *queueMetrics) recordTransition(kind string) {
	m.transitions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("kind", kind)),
	)
}

func (m *queueMetrics) recordOffer(added bool) {
	status := "ok"
	if !added {
		status = "rejected"
	}
	m.offers.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("status", status)),
	)
}

func (m *queueMetrics) recordPoll(status string) {
	m.polls.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("status", status)),
	)
}
