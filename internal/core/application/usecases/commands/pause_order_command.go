package commands

import (
	"errors"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/guard"
)

var ErrPauseOrderCommandIsNotConstructed = errors.New(
	"PauseOrderCommand must be created via NewPauseOrderCommand constructor",
)

// PauseOrderCommand opens a pause on an order with a free-text reason.
//
// Example:
//
//	cmd, err := NewPauseOrderCommand(orderID, "lunch")
//	if err != nil {
//	    return err // order ID not assigned
//	}
//	pause, err := handler.Handle(ctx, cmd)
//
// The reason is checked by the order itself once it has been loaded, so a
// missing order is reported before a bad reason.
type PauseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	reason  string

	guard guard.ConstructorGuard
}

// NewPauseOrderCommand validates the order ID and carries the reason as given.
func NewPauseOrderCommand(orderID kernel.ID, reason string) (PauseOrderCommand, error) {
	cmd := PauseOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PauseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseOrderCommand) Validate() error {
	return c.guard.Validate(ErrPauseOrderCommandIsNotConstructed)
}

func (c PauseOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c PauseOrderCommand) Reason() string {
	return c.reason
}

func (c *PauseOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
