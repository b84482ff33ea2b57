// Package ports defines the contracts between the order lifecycle core and the
// infrastructure that stores orders and fans out notifications.
package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and the
// pauses they own. Every method is atomic on its own; multi-row consistency
// comes from running them inside a UnitOfWork.
type OrderRepository interface {
	// Add persists a new order and assigns the store-generated ID to it.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row together with its pauses. New pauses are
	// inserted and receive their IDs; existing ones are saved in place.
	// Returns order.ErrActivePauseExists if the store detects a second open pause.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its pauses in creation order.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate is Get plus a row lock held until the surrounding transaction
	// ends, serializing lifecycle operations on the same order.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// FindActivePause returns the open pause of an order, or nil if there is none.
	FindActivePause(ctx context.Context, orderID kernel.ID) (*order.Pause, error)

	// List returns all orders with their pauses, most recently created first.
	List(ctx context.Context) ([]*order.Order, error)
}
