package commands

import (
	"context"
	"log/slog"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// lifecycle holds what every transition handler needs: a transaction per call,
// the clock, and the publisher notified after commit.
type lifecycle struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func newLifecycle(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) lifecycle {
	return lifecycle{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
		logger:     logger,
	}
}

// transition loads the order under a row lock, applies fn at the current time,
// saves order and pauses in one transaction, commits and then publishes
// OrderUpdated. The lock makes concurrent transitions on the same order run one
// after the other, so totals never lose an update.
func (l lifecycle) transition(
	ctx context.Context,
	orderID kernel.ID,
	fn func(o *order.Order, now time.Time) error,
) (*order.Order, error) {
	uow := l.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := l.clock.Now()
	if err = fn(aggregate, now); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	l.publish(ctx, order.NewOrderUpdatedEvent(aggregate, now))
	return aggregate, nil
}

// publish never fails the operation; a delivery problem is only logged.
func (l lifecycle) publish(ctx context.Context, event order.Event) {
	if l.publisher == nil {
		return
	}

	if err := l.publisher.Publish(ctx, event); err != nil {
		l.logger.WarnContext(ctx, "Failed to publish order event",
			"event", event.Kind().String(),
			"order_id", event.Order().ID().Int64(),
			"error", err,
		)
	}
}
