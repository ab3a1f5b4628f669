package ports

import (
	"context"

	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/core/domain/model/kernel"
)

// CompanyRepository defines the persistence contract for buyer companies.
type CompanyRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*company.Company, error)

	// Update persists the whitelisted fields and the verification state.
	Update(ctx context.Context, aggregate *company.Company) error

	// Delete removes a company, or returns errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
