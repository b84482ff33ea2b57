package commands

import (
	"context"
	"log/slog"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// ResumeOrderCommandHandler closes the open pause of an order and adds its
// duration to the order's pause total. Both rows are written in one
// transaction, so a failure leaves neither change behind.
type ResumeOrderCommandHandler struct {
	lifecycle lifecycle
}

func NewResumeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ResumeOrderCommandHandler {
	return ResumeOrderCommandHandler{
		lifecycle: newLifecycle(uowFactory, clock, publisher, logger),
	}
}

// Handle returns the closed pause. Fails with errs.ErrInvalidTransition
// (order.ErrNoActivePause) when nothing is paused.
func (h *ResumeOrderCommandHandler) Handle(ctx context.Context, cmd ResumeOrderCommand) (*order.Pause, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var closed *order.Pause
	_, err := h.lifecycle.transition(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		p, err := o.Resume(now)
		if err != nil {
			return err
		}
		closed = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return closed, nil
}
