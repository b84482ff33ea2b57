package order

import "time"

// EventKind names a lifecycle notification.
type EventKind int

const (
	EventUnknown EventKind = iota

	// OrderCreated follows a successful create.
	OrderCreated

	// OrderUpdated follows every successful start, pause, resume and finish.
	OrderUpdated
)

func (k EventKind) String() string {
	switch k {
	case OrderCreated:
		return "OrderCreated"
	case OrderUpdated:
		return "OrderUpdated"
	default:
		return "Unknown"
	}
}

// Event carries the full order as it was committed.
type Event struct {
	kind       EventKind
	order      *Order
	occurredAt time.Time
}

func NewOrderCreatedEvent(o *Order, at time.Time) Event {
	return Event{kind: OrderCreated, order: o, occurredAt: at}
}

func NewOrderUpdatedEvent(o *Order, at time.Time) Event {
	return Event{kind: OrderUpdated, order: o, occurredAt: at}
}

func (e Event) Kind() EventKind {
	return e.kind
}

func (e Event) Order() *Order {
	return e.order
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}
