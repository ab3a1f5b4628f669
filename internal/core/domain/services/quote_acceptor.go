package services

import (
	"errors"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/core/domain/model/quote"
)

// ErrOrderBelongsToAnotherQuote is returned when the existing order handed to
// Accept references a different quote.
var ErrOrderBelongsToAnotherQuote = errors.New("existing order belongs to another quote")

// QuoteAcceptor is a domain service that accepts a quote and opens its order.
//
// Business rules:
//   - One quote owns at most one order
//   - Accepting a quote that already has an order returns that order unchanged
//   - The order copies quantity, target price, lead time and the first product
//     image of the quote
//
// Example usage:
//
//	acceptor := services.NewQuoteAcceptor()
//	existing, _ := orders.GetByQuote(ctx, q.ID()) // nil when absent
//	o, created, err := acceptor.Accept(q, existing, kernel.NewUUID(), order.NewNumber(), time.Now())
//	if err != nil {
//	    return err
//	}
//	if created {
//	    // persist o
//	}
type QuoteAcceptor struct{}

// NewQuoteAcceptor creates a new QuoteAcceptor instance.
func NewQuoteAcceptor() QuoteAcceptor {
	return QuoteAcceptor{}
}

// Accept marks q Accepted and returns its order.
//
// Parameters:
//   - q: the quote being accepted (must be valid)
//   - existing: the order already stored for q, or nil
//   - orderID, number: identity of the order to create when none exists
//   - now: creation time of the new order
//
// Returns:
//   - *order.Order: existing when non-nil, otherwise a new Confirmed order
//   - bool: true when a new order was created and must be persisted
//   - error: validation errors of the quote or the new order
func (QuoteAcceptor) Accept(
	q *quote.Quote,
	existing *order.Order,
	orderID kernel.UUID,
	number order.Number,
	now time.Time,
) (*order.Order, bool, error) {
	if err := q.Validate(); err != nil {
		return nil, false, err
	}

	if existing != nil && !existing.QuoteID().IsEqual(q.ID()) {
		return nil, false, ErrOrderBelongsToAnotherQuote
	}

	if _, err := q.Accept(); err != nil {
		return nil, false, err
	}

	if existing != nil {
		return existing, false, nil
	}

	o, err := order.NewOrder(orderID, number, q.ID(), q.OrderTerms(), now)
	if err != nil {
		return nil, false, err
	}

	return o, true, nil
}
