package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderReportQueryHandler assembles order reports. It has no side effects.
type GetOrderReportQueryHandler struct {
	orders GetOrderQueryHandler
}

func NewGetOrderReportQueryHandler(db *gorm.DB) GetOrderReportQueryHandler {
	return GetOrderReportQueryHandler{orders: NewGetOrderQueryHandler(db)}
}

// Handle fails with errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderReportQueryHandler) Handle(ctx context.Context, query GetOrderReportQuery) (OrderReport, error) {
	if err := query.Validate(); err != nil {
		return OrderReport{}, err
	}

	orderQuery, err := NewGetOrderQuery(query.OrderID())
	if err != nil {
		return OrderReport{}, err
	}

	view, err := h.orders.Handle(ctx, orderQuery)
	if err != nil {
		return OrderReport{}, err
	}

	return BuildReport(view), nil
}

// BuildReport projects an order view into its report.
func BuildReport(view OrderView) OrderReport {
	pauses := make([]PauseSummary, 0, len(view.Pauses))
	for _, p := range view.Pauses {
		pauses = append(pauses, PauseSummary{
			Reason:          p.Reason,
			StartedAt:       p.StartedAt,
			EndedAt:         p.EndedAt,
			DurationSeconds: p.DurationSeconds,
		})
	}

	return OrderReport{
		ID:                 view.ID,
		Name:               view.Name,
		Description:        view.Description,
		StartedAt:          view.StartedAt,
		FinishedAt:         view.FinishedAt,
		TotalActiveSeconds: view.TotalActiveSeconds,
		TotalPauseSeconds:  view.TotalPauseSeconds,
		Pauses:             pauses,
	}
}
