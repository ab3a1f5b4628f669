package orderrepo

import (
	"context"
	"errors"
	"time"

	"sourcing/internal/adapters/out/postgres/pgerr"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	quoteIndex  = "idx_orders_quote_id"
	numberIndex = "idx_orders_order_number"
)

type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if conflict := pgerr.ConflictOn(err, quoteIndex, "quoteId", aggregate.QuoteID().String()); conflict != nil {
			return conflict
		}
		if conflict := pgerr.ConflictOn(err, numberIndex, "orderNumber", aggregate.Number().String()); conflict != nil {
			return conflict
		}
		return pgerr.Unavailable("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, pgerr.Unavailable("get order", err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetByQuote(ctx context.Context, quoteID kernel.UUID) (*order.Order, error) {
	if err := quoteID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "quote_id = ?", quoteID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quoteId", quoteID.String())
		}
		return nil, pgerr.Unavailable("get order by quote", err)
	}

	return toDomain(dto)
}

// UpdateProgress rewrites one key of the steps object with jsonb_set and, when
// the change carries one, the overall status. Other steps are left as stored.
func (r *GormOrderRepository) UpdateProgress(ctx context.Context, change order.StepChange, updatedAt time.Time) error {
	if err := errors.Join(change.OrderID.Validate(), change.Step.Validate(), change.StepStatus.Validate()); err != nil {
		return err
	}

	updates := map[string]any{
		"steps":      gorm.Expr("jsonb_set(steps, ARRAY[?::text], to_jsonb(?::text))", change.Step.String(), change.StepStatus.String()),
		"updated_at": updatedAt,
	}
	if change.OverallStatus != nil {
		if err := change.OverallStatus.Validate(); err != nil {
			return err
		}
		updates["status"] = change.OverallStatus.String()
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", change.OrderID.Bytes()).Updates(updates)
	if result.Error != nil {
		return pgerr.Unavailable("update order progress", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", change.OrderID.String())
	}

	return nil
}
