package ports

import (
	"context"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. A second order for the same quote is rejected
	// with errs.ConflictError by the store's unique index on the quote reference.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when no order matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get that also locks the order row until the surrounding
	// transaction ends, serializing concurrent step updates of one order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByQuote retrieves the order created for a quote.
	// Returns errs.ObjectNotFoundError when the quote has no order yet.
	GetByQuote(ctx context.Context, quoteID kernel.UUID) (*order.Order, error)

	// UpdateProgress writes a step change as one partial update: the step
	// status, the overall status when the change carries one, and updatedAt.
	// No other column is touched.
	UpdateProgress(ctx context.Context, change order.StepChange, updatedAt time.Time) error
}
