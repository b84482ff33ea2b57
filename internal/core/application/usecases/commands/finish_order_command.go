package commands

import (
	"errors"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand closes the lifecycle of an order and fixes its active time.
type FinishOrderCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewFinishOrderCommand(orderID kernel.ID) (FinishOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FinishOrderCommand{}, err
	}

	return FinishOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

func (c FinishOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
