package postgres

import (
	"sourcing/internal/adapters/out/postgres/companyrepo"
	"sourcing/internal/adapters/out/postgres/orderrepo"
	"sourcing/internal/adapters/out/postgres/productrepo"
	"sourcing/internal/adapters/out/postgres/quoterepo"
	"sourcing/internal/adapters/out/postgres/vendorrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&quoterepo.QuoteDTO{},
		&orderrepo.OrderDTO{},
		&vendorrepo.VendorDTO{},
		&companyrepo.CompanyDTO{},
		&productrepo.ProductDTO{},
	)
}
