package orderrepo

import (
	"context"
	"errors"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation pq.ErrorCode = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order with its pauses and assigns the generated IDs.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.ID().IsZero() {
		return order.ErrOrderIDAlreadySet
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	if err = r.savePauses(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the order row and its pauses.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "started_at", "finished_at",
			"total_active_seconds", "total_pause_seconds", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("orderID", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if err := r.savePauses(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID together with its pauses.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.load(ctx, id, false)
}

// GetForUpdate retrieves an order and locks its row until the transaction ends.
// Outside a transaction the lock is released immediately.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.load(ctx, id, true)
}

// FindActivePause returns the open pause of the order, or nil.
func (r *GormOrderRepository) FindActivePause(ctx context.Context, orderID kernel.ID) (*order.Pause, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PauseDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND ended_at IS NULL", orderID.Int64()).
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil // absence is a valid answer
	}
	return pauseToDomain(dtos[0])
}

// List retrieves all orders with their pauses, newest first.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return make([]*order.Order, 0), nil
	}

	ids := make([]int64, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}

	var pauseDTOs []PauseDTO
	err := r.db.WithContext(ctx).
		Where("order_id IN ?", ids).
		Order("started_at, id").
		Find(&pauseDTOs).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]PauseDTO, len(dtos))
	for _, pd := range pauseDTOs {
		byOrder[pd.OrderID] = append(byOrder[pd.OrderID], pd)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toErr := toDomain(dto, byOrder[dto.ID])
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) load(ctx context.Context, id kernel.ID, forUpdate bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	var pauseDTOs []PauseDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("started_at, id").
		Find(&pauseDTOs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, pauseDTOs)
}

// savePauses inserts pauses that have no ID yet and rewrites the closing
// fields of the others. The partial unique index on open pauses turns a second
// open pause into order.ErrActivePauseExists.
func (r *GormOrderRepository) savePauses(ctx context.Context, aggregate *order.Order) error {
	for _, p := range aggregate.Pauses() {
		dto := pauseFromDomain(p)

		if p.ID().IsZero() {
			if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
				return translate(err)
			}

			id, err := kernel.NewID(dto.ID)
			if err != nil {
				return err
			}
			if err = p.AssignID(id); err != nil {
				return err
			}
			continue
		}

		err := r.db.WithContext(ctx).
			Model(&PauseDTO{}).
			Where("id = ? AND order_id = ?", dto.ID, dto.OrderID).
			Select("ended_at", "duration_seconds").
			Updates(&dto).Error
		if err != nil {
			return translate(err)
		}
	}

	return nil
}

func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.NewInvalidTransitionErrorWithCause("pause", order.Paused.String(), order.ErrActivePauseExists)
	}
	return err
}
