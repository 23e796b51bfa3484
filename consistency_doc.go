package pendingqueue

// Consistency model
//
// Transition notifications are edge-triggered: they fire only when the
// queue's logical state crosses a boundary, not on every operation. The
// detection is deliberately weak:
//
//   - Offer observes emptiness, then inserts, as two separate steps. Poll
//     observes emptiness, then removes, the same way. No lock couples the
//     observation to the mutation, so under adversarial interleavings an
//     edge may rarely be missed or fired twice. Callers must treat
//     notifications as wake-up hints and re-check queue state themselves.
//
//   - The full flag is a single atomic boolean maintained only through
//     compare-and-swap on Offer/Poll outcomes. It is set when an insert is
//     rejected and cleared by the next successful removal that wins the
//     swap. This bounds each full↔not-full crossing to at most one
//     notification, regardless of how many producers observe rejection
//     concurrently. It is not tied atomically to true occupancy.
//
//   - Listener registries iterate live state during delivery. A callback
//     registered or removed while a notification is in flight may or may
//     not see that event. Delivery order is unspecified.
//
// Accepting rare spurious or missed signals keeps the hot insert/remove
// paths free of a shared lock; dependent stages built on these signals must
// tolerate both.
