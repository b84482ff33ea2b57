package queries

import (
	"errors"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/guard"
)

var ErrGetOrderReportQueryIsNotConstructed = errors.New(
	"GetOrderReportQuery must be created via NewGetOrderReportQuery constructor",
)

// GetOrderReportQuery asks for the time summary of one order.
//
// Example:
//
//	query, _ := NewGetOrderReportQuery(orderID)
//	report, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
//	fmt.Println(report.TotalActiveSeconds, len(report.Pauses))
type GetOrderReportQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderReportQuery(orderID kernel.ID) (GetOrderReportQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderReportQuery{}, err
	}

	return GetOrderReportQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderReportQueryIsNotConstructed)
}

func (q GetOrderReportQuery) OrderID() kernel.ID {
	return q.orderID
}

// OrderReport is a read-only projection of an order: identifying fields, both
// time totals and its pauses in creation order.
type OrderReport struct {
	ID                 int64
	Name               string
	Description        *string
	StartedAt          *time.Time
	FinishedAt         *time.Time
	TotalActiveSeconds int64
	TotalPauseSeconds  int64
	Pauses             []PauseSummary
}

// PauseSummary is one line of the report. EndedAt and DurationSeconds are nil
// for a pause that is still open.
type PauseSummary struct {
	Reason          string
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int64
}
