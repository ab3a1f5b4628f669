package quoterepo

import (
	"context"
	"errors"

	"sourcing/internal/adapters/out/postgres/pgerr"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormQuoteRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormQuoteRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*quote.Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id.String())
		}
		return nil, pgerr.Unavailable("get quote", err)
	}

	return toDomain(dto)
}

func (r *GormQuoteRepository) Update(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&QuoteDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":   aggregate.Status().String(),
			"comments": aggregate.Comments(),
		})
	if result.Error != nil {
		return pgerr.Unavailable("update quote", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("quote", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormQuoteRepository) ListAcceptedWithoutOrder(ctx context.Context, limit int) ([]*quote.Quote, error) {
	var dtos []QuoteDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", quote.Accepted.String()).
		Where("NOT EXISTS (SELECT 1 FROM orders WHERE orders.quote_id = quotes.id)").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Unavailable("list accepted quotes", err)
	}

	quotes := make([]*quote.Quote, 0, len(dtos))
	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}
