package companyrepo

import (
	"context"
	"errors"

	"sourcing/internal/adapters/out/postgres/pgerr"
	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormCompanyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCompanyRepository(db *gorm.DB, tracker aggregateTracker) *GormCompanyRepository {
	return &GormCompanyRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", id.String())
		}
		return nil, pgerr.Unavailable("get company", err)
	}

	return toDomain(dto)
}

// Update writes the patchable columns. verified_at is written even when nil so
// leaving Approved clears it.
func (r *GormCompanyRepository) Update(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CompanyDTO{}).
		Where("id = ?", dto.ID).
		Select("registered_company_name", "gst_tax_id", "has_been_verified", "status",
			"verified_at", "verified_by", "rejection_reason", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Unavailable("update company", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("company", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCompanyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CompanyDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Unavailable("delete company", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("company", id.String())
	}

	return nil
}
