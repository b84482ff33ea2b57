package commands

import (
	"errors"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Batch 42", "night shift")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, publisher, logger)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the name (required, at most 100 characters).
// The description is optional.
func NewCreateOrderCommand(name, description string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Name returns the order name.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Description returns the optional description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

func (c *CreateOrderCommand) setName(name string) error {
	if err := order.ValidateName(name); err != nil {
		return err
	}

	c.name = name
	return nil
}
