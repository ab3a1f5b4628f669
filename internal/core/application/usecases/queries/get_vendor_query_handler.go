package queries

import (
	"context"

	"sourcing/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetVendorQueryHandler struct {
	db *gorm.DB
}

func NewGetVendorQueryHandler(db *gorm.DB) GetVendorQueryHandler {
	return GetVendorQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown vendor.
func (h GetVendorQueryHandler) Handle(ctx context.Context, query GetVendorQuery) (VendorView, error) {
	if err := query.Validate(); err != nil {
		return VendorView{}, err
	}

	vendors, err := scanVendors(ctx, h.db, "get vendor", vendorColumns+"\n\t\tWHERE id = ?", query.VendorID().Bytes())
	if err != nil {
		return VendorView{}, err
	}
	if len(vendors) == 0 {
		return VendorView{}, errs.NewObjectNotFoundError("vendorId", query.VendorID())
	}
	return vendors[0], nil
}
