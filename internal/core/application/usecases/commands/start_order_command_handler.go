package commands

import (
	"context"
	"log/slog"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// StartOrderCommandHandler records the start time of an order.
//
// Fails with errs.ErrObjectNotFound for an unknown order and with
// errs.ErrInvalidTransition (order.ErrAlreadyStarted) when it was started before.
type StartOrderCommandHandler struct {
	lifecycle lifecycle
}

func NewStartOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		lifecycle: newLifecycle(uowFactory, clock, publisher, logger),
	}
}

// Handle starts the order and returns its updated state.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.lifecycle.transition(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Start(now)
	})
}
