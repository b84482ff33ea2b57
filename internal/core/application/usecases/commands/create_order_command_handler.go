package commands

import (
	"context"
	"log/slog"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// CreateOrderCommandHandler persists a new order in Created status and
// announces it with OrderCreated.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, publisher, logger)
//	cmd, _ := NewCreateOrderCommand("Batch 42", "")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(created.ID())
type CreateOrderCommandHandler struct {
	lifecycle lifecycle
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		lifecycle: newLifecycle(uowFactory, clock, publisher, logger),
	}
}

// Handle processes the order creation command and returns the stored order
// carrying its store-assigned ID.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.lifecycle.clock.Now()
	aggregate, err := order.NewOrder(cmd.Name(), cmd.Description(), now)
	if err != nil {
		return nil, err
	}

	uow := h.lifecycle.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.lifecycle.publish(ctx, order.NewOrderCreatedEvent(aggregate, now))
	return aggregate, nil
}
