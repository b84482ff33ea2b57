package commands

import (
	"context"
	"log/slog"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// PauseOrderCommandHandler opens a new pause on an order.
//
// The order is not required to be running. A second open pause is rejected
// with errs.ErrInvalidTransition (order.ErrActivePauseExists); the store's
// partial unique index backs the same rule if two requests race past the lock.
type PauseOrderCommandHandler struct {
	lifecycle lifecycle
}

func NewPauseOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) PauseOrderCommandHandler {
	return PauseOrderCommandHandler{
		lifecycle: newLifecycle(uowFactory, clock, publisher, logger),
	}
}

// Handle opens the pause and returns it with its store-assigned ID.
func (h *PauseOrderCommandHandler) Handle(ctx context.Context, cmd PauseOrderCommand) (*order.Pause, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var opened *order.Pause
	_, err := h.lifecycle.transition(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		p, err := o.Pause(cmd.Reason(), now)
		if err != nil {
			return err
		}
		opened = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return opened, nil
}
