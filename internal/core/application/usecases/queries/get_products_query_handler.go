package queries

import (
	"context"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const productColumns = `
		SELECT
			id,
			code,
			name,
			description,
			category,
			price_range,
			quantity_per_order,
			product_images,
			measurement_specs,
			attributes,
			created_at,
			updated_at
		FROM products`

// GetProductsQueryHandler reads the product catalog.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := productColumns
	var args []any
	if category := query.Category(); category != "" {
		sql += "\n\t\tWHERE category = ?"
		args = append(args, category)
	}
	sql += "\n\t\tORDER BY created_at DESC, id"

	return scanProducts(ctx, h.db, "list products", sql, args...)
}

func scanProducts(ctx context.Context, db *gorm.DB, operation, sql string, args ...any) ([]ProductView, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError(operation, err)
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			details              product.Details
			category             *string
			images, specs        pq.StringArray
			attributes           datatypes.JSONType[[]map[string]string]
			createdAt, updatedAt time.Time
		)
		err = rows.Scan(
			&id,
			&details.Code,
			&details.Name,
			&details.Description,
			&category,
			&details.PriceRange,
			&details.QuantityPerOrder,
			&images,
			&specs,
			&attributes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, errs.NewStoreUnavailableError(operation, err)
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		if category != nil {
			details.Category = *category
		}

		products = append(products, ProductView{
			ID:      productID,
			Details: details,
			Media: product.Media{
				ProductImages:    images,
				MeasurementSpecs: specs,
			},
			Attributes: attributesFromRow(attributes.Data()),
			CreatedAt:  createdAt,
			UpdatedAt:  updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError(operation, err)
	}

	return products, nil
}

func attributesFromRow(stored []map[string]string) []product.Attribute {
	attributes := make([]product.Attribute, 0, len(stored))
	for _, fields := range stored {
		attributes = append(attributes, product.Attribute{Fields: fields})
	}
	return attributes
}
