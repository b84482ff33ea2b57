package commands

import (
	"context"
	"log/slog"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// FinishOrderCommandHandler records the finish time and computes
// totalActiveSeconds = elapsed whole seconds - totalPauseSeconds.
//
// An open pause is left open and is not counted. Fails with
// errs.ErrInvalidTransition wrapping order.ErrNotStarted or
// order.ErrAlreadyFinished.
type FinishOrderCommandHandler struct {
	lifecycle lifecycle
}

func NewFinishOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		lifecycle: newLifecycle(uowFactory, clock, publisher, logger),
	}
}

func (h *FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.lifecycle.transition(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Finish(now)
	})
}
