// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between the order with its pauses and their database rows.
package orderrepo

import (
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderDTO represents a row of the orders table. Timestamps come from the
// domain clock, so GORM's automatic time tracking is switched off.
type OrderDTO struct {
	ID                 int64 `gorm:"primaryKey;autoIncrement"`
	Name               string
	Description        *string
	StartedAt          *time.Time
	FinishedAt         *time.Time
	TotalActiveSeconds int64
	TotalPauseSeconds  int64
	CreatedAt          time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// PauseDTO represents a row of the pauses table.
type PauseDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	OrderID         int64
	Reason          string
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int64
}

func (PauseDTO) TableName() string {
	return "pauses"
}

// fromDomain converts an order aggregate to its row. The ID is zero for an
// order that was never saved.
func fromDomain(o *order.Order) OrderDTO {
	var description *string
	if d := o.Description(); d != "" {
		description = &d
	}

	return OrderDTO{
		ID:                 o.ID().Int64(),
		Name:               o.Name(),
		Description:        description,
		StartedAt:          o.StartedAt(),
		FinishedAt:         o.FinishedAt(),
		TotalActiveSeconds: o.TotalActiveSeconds(),
		TotalPauseSeconds:  o.TotalPauseSeconds(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func pauseFromDomain(p *order.Pause) PauseDTO {
	return PauseDTO{
		ID:              p.ID().Int64(),
		OrderID:         p.OrderID().Int64(),
		Reason:          p.Reason(),
		StartedAt:       p.StartedAt(),
		EndedAt:         p.EndedAt(),
		DurationSeconds: p.DurationSeconds(),
	}
}

// toDomain rebuilds the aggregate from its row and its pause rows, which must
// already be in creation order.
func toDomain(dto OrderDTO, pauseDTOs []PauseDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	pauses := make([]*order.Pause, 0, len(pauseDTOs))
	for _, pd := range pauseDTOs {
		p, pauseErr := pauseToDomain(pd)
		if pauseErr != nil {
			return nil, pauseErr
		}
		pauses = append(pauses, p)
	}

	var description string
	if dto.Description != nil {
		description = *dto.Description
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                 id,
		Name:               dto.Name,
		Description:        description,
		StartedAt:          utcPtr(dto.StartedAt),
		FinishedAt:         utcPtr(dto.FinishedAt),
		TotalActiveSeconds: dto.TotalActiveSeconds,
		TotalPauseSeconds:  dto.TotalPauseSeconds,
		CreatedAt:          dto.CreatedAt.UTC(),
		UpdatedAt:          dto.UpdatedAt.UTC(),
		Pauses:             pauses,
	})
}

func pauseToDomain(dto PauseDTO) (*order.Pause, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return order.RestorePause(order.PauseSnapshot{
		ID:              id,
		OrderID:         orderID,
		Reason:          dto.Reason,
		StartedAt:       dto.StartedAt.UTC(),
		EndedAt:         utcPtr(dto.EndedAt),
		DurationSeconds: dto.DurationSeconds,
	})
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
