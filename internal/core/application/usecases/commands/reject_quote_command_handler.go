package commands

import (
	"context"

	"sourcing/internal/core/domain/model/quote"
)

// RejectQuoteCommandHandler marks a quote Rejected. Accepted quotes are refused
// with errs.ConflictError because their order already exists.
type RejectQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
}

func NewRejectQuoteCommandHandler(uowFactory QuoteUoWFactory) RejectQuoteCommandHandler {
	return RejectQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RejectQuoteCommandHandler) Handle(ctx context.Context, command RejectQuoteCommand) (*quote.Quote, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()

	q, err := quoteRepo.GetForUpdate(ctx, command.QuoteID())
	if err != nil {
		return nil, err
	}

	if err = q.Reject(command.Comments()); err != nil {
		return nil, err
	}

	if err = quoteRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return q, nil
}
