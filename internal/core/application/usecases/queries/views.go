// Package queries contains read-only operations over orders.
// Handlers read straight from the database with GORM and return flat views;
// they never load aggregates and never take row locks.
package queries

import (
	"context"
	"time"

	"ordertracker/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderView is the read model of an order with its pause history.
type OrderView struct {
	ID                 int64
	Name               string
	Description        *string
	StartedAt          *time.Time
	FinishedAt         *time.Time
	TotalActiveSeconds int64
	TotalPauseSeconds  int64
	Status             order.Status
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Pauses             []PauseView
}

// PauseView is the read model of a pause. EndedAt and DurationSeconds are nil
// while the pause is open.
type PauseView struct {
	ID              int64
	OrderID         int64
	Reason          string
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int64
}

type orderRow struct {
	ID                 int64
	Name               string
	Description        *string
	StartedAt          *time.Time
	FinishedAt         *time.Time
	TotalActiveSeconds int64
	TotalPauseSeconds  int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

const selectOrders = `
	SELECT
		id,
		name,
		description,
		started_at,
		finished_at,
		total_active_seconds,
		total_pause_seconds,
		created_at,
		updated_at
	FROM orders`

// loadOrderViews runs an orders query and attaches each order's pauses in
// creation order. Row order of the orders query is kept.
func loadOrderViews(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderView, error) {
	var rows []orderRow
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var pauses []PauseView
	err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			reason,
			started_at,
			ended_at,
			duration_seconds
		FROM pauses
		WHERE order_id IN ?
		ORDER BY started_at, id
	`, ids).Scan(&pauses).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]PauseView, len(rows))
	for _, p := range pauses {
		p.StartedAt = p.StartedAt.UTC()
		p.EndedAt = utcPtr(p.EndedAt)
		byOrder[p.OrderID] = append(byOrder[p.OrderID], p)
	}

	for _, r := range rows {
		orderPauses := byOrder[r.ID]
		if orderPauses == nil {
			orderPauses = make([]PauseView, 0)
		}

		hasActivePause := false
		for _, p := range orderPauses {
			if p.EndedAt == nil {
				hasActivePause = true
				break
			}
		}

		views = append(views, OrderView{
			ID:                 r.ID,
			Name:               r.Name,
			Description:        r.Description,
			StartedAt:          utcPtr(r.StartedAt),
			FinishedAt:         utcPtr(r.FinishedAt),
			TotalActiveSeconds: r.TotalActiveSeconds,
			TotalPauseSeconds:  r.TotalPauseSeconds,
			Status:             order.DeriveStatus(r.StartedAt != nil, r.FinishedAt != nil, hasActivePause),
			CreatedAt:          r.CreatedAt.UTC(),
			UpdatedAt:          r.UpdatedAt.UTC(),
			Pauses:             orderPauses,
		})
	}

	return views, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
