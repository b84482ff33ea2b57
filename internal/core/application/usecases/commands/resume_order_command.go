package commands

import (
	"errors"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/guard"
)

var ErrResumeOrderCommandIsNotConstructed = errors.New(
	"ResumeOrderCommand must be created via NewResumeOrderCommand constructor",
)

// ResumeOrderCommand closes the open pause of an order.
type ResumeOrderCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewResumeOrderCommand(orderID kernel.ID) (ResumeOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ResumeOrderCommand{}, err
	}

	return ResumeOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeOrderCommandIsNotConstructed)
}

func (c ResumeOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
