package commands

import (
	"context"
	"errors"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/core/domain/services"
	"sourcing/internal/pkg/clock"
	"sourcing/internal/pkg/errs"
)

// AcceptQuoteResult is the outcome of an acceptance.
type AcceptQuoteResult struct {
	Quote *quote.Quote
	Order *order.Order

	// OrderCreated is false when the quote already had an order.
	OrderCreated bool
}

// AcceptQuoteCommandHandler accepts a quote and creates its order at most once.
//
// The quote row is locked before the order lookup, so concurrent acceptances
// of one quote run one after the other and the second one finds the order the
// first one created. The unique index on orders.quote_id backs this up: a
// duplicate insert surfaces as errs.ConflictError on quoteId, and the handler
// then returns the order that won. A collision on the generated order number
// is retried with a fresh number.
type AcceptQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	clock      clock.Clock
}

func NewAcceptQuoteCommandHandler(uowFactory QuoteUoWFactory, clk clock.Clock) AcceptQuoteCommandHandler {
	return AcceptQuoteCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h AcceptQuoteCommandHandler) Handle(ctx context.Context, command AcceptQuoteCommand) (AcceptQuoteResult, error) {
	if err := command.Validate(); err != nil {
		return AcceptQuoteResult{}, err
	}

	var (
		result AcceptQuoteResult
		err    error
	)
	for range maxNumberAttempts {
		result, err = h.accept(ctx, command.QuoteID())
		switch conflictOn(err) {
		case "quoteId":
			return h.existing(ctx, command.QuoteID())
		case "orderNumber":
			continue
		}
		return result, err
	}
	return result, err
}

const maxNumberAttempts = 3

func conflictOn(err error) string {
	var conflict *errs.ConflictError
	if errors.As(err, &conflict) {
		return conflict.ParamName
	}
	return ""
}

func (h AcceptQuoteCommandHandler) accept(ctx context.Context, quoteID kernel.UUID) (AcceptQuoteResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptQuoteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()
	orderRepo := uow.OrderRepository()

	q, err := quoteRepo.GetForUpdate(ctx, quoteID)
	if err != nil {
		return AcceptQuoteResult{}, err
	}

	existing, err := orderRepo.GetByQuote(ctx, quoteID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return AcceptQuoteResult{}, err
	}

	o, created, err := services.NewQuoteAcceptor().Accept(q, existing, kernel.NewUUID(), order.NewNumber(), h.clock.Now())
	if err != nil {
		return AcceptQuoteResult{}, err
	}

	if err = quoteRepo.Update(ctx, q); err != nil {
		return AcceptQuoteResult{}, err
	}

	if created {
		if err = orderRepo.Add(ctx, o); err != nil {
			return AcceptQuoteResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptQuoteResult{}, err
	}

	return AcceptQuoteResult{Quote: q, Order: o, OrderCreated: created}, nil
}

// existing reads back the quote and the order another transaction created.
func (h AcceptQuoteCommandHandler) existing(ctx context.Context, quoteID kernel.UUID) (AcceptQuoteResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptQuoteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	q, err := uow.QuoteRepository().Get(ctx, quoteID)
	if err != nil {
		return AcceptQuoteResult{}, err
	}

	o, err := uow.OrderRepository().GetByQuote(ctx, quoteID)
	if err != nil {
		return AcceptQuoteResult{}, err
	}

	return AcceptQuoteResult{Quote: q, Order: o}, nil
}
