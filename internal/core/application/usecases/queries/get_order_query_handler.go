package queries

import (
	"context"

	"ordertracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its pauses and derived status.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := loadOrderViews(ctx, h.db, selectOrders+`
		WHERE id = ?`, query.OrderID().Int64())
	if err != nil {
		return OrderView{}, err
	}

	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	return views[0], nil
}
