package ports

import (
	"context"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product. A duplicate product code yields errs.ConflictError.
	Add(ctx context.Context, aggregate *product.Product) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate is Get with the row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// ExistsByCode reports whether a product other than exclude uses code.
	// exclude may be nil.
	ExistsByCode(ctx context.Context, code string, exclude *kernel.UUID) (bool, error)

	// Update persists every field of the product. A duplicate code yields errs.ConflictError.
	Update(ctx context.Context, aggregate *product.Product) error

	Delete(ctx context.Context, id kernel.UUID) error
}
