package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
)

// EventPublisher broadcasts lifecycle events to live subscribers.
//
// Delivery is best-effort: Publish is called only after the transaction that
// produced the event has committed, and an error it returns is logged by the
// caller but never turns a successful operation into a failed one.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
