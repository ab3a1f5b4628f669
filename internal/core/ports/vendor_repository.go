package ports

import (
	"context"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendors.
// Vendor profiles are written by onboarding; the admin service only changes status.
type VendorRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)
	UpdateStatus(ctx context.Context, aggregate *vendor.Vendor) error
}
