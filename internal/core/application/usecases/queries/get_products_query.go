package queries

import (
	"errors"
	"strings"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery lists the catalog newest first, optionally narrowed to
// one category.
type GetProductsQuery struct {
	category string

	guard guard.ConstructorGuard
}

func NewGetProductsQuery(category string) GetProductsQuery {
	return GetProductsQuery{
		category: strings.TrimSpace(category),
		guard:    guard.NewConstructorGuard(),
	}
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

func (q GetProductsQuery) Category() string { return q.category }

type ProductView struct {
	ID         kernel.UUID
	Details    product.Details
	Media      product.Media
	Attributes []product.Attribute
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
