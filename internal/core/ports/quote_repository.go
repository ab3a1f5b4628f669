package ports

import (
	"context"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
type QuoteRepository interface {
	// Get retrieves a quote, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// Update persists the review state (status and comments) of a quote.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// ListAcceptedWithoutOrder returns up to limit accepted quotes that have no
	// order, oldest first.
	ListAcceptedWithoutOrder(ctx context.Context, limit int) ([]*quote.Quote, error)
}
