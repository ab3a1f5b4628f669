package queries

import (
	"context"

	"sourcing/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown product.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	products, err := scanProducts(ctx, h.db, "get product", productColumns+"\n\t\tWHERE id = ?", query.ProductID().Bytes())
	if err != nil {
		return ProductView{}, err
	}
	if len(products) == 0 {
		return ProductView{}, errs.NewObjectNotFoundError("id", query.ProductID())
	}
	return products[0], nil
}
