package commands

import (
	"context"
	"errors"
	"fmt"
)

// ReconcileAcceptedQuotesCommandHandler finds accepted quotes without an order
// and runs each through AcceptQuoteCommandHandler in its own transaction.
// A failing quote does not stop the batch; failures are joined into the result error.
type ReconcileAcceptedQuotesCommandHandler struct {
	uowFactory QuoteUoWFactory
	accept     AcceptQuoteCommandHandler
}

func NewReconcileAcceptedQuotesCommandHandler(
	uowFactory QuoteUoWFactory,
	accept AcceptQuoteCommandHandler,
) ReconcileAcceptedQuotesCommandHandler {
	return ReconcileAcceptedQuotesCommandHandler{
		uowFactory: uowFactory,
		accept:     accept,
	}
}

// Handle returns how many orders were created.
func (h ReconcileAcceptedQuotesCommandHandler) Handle(
	ctx context.Context,
	command ReconcileAcceptedQuotesCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	quotes, err := h.uowFactory.Create().QuoteRepository().ListAcceptedWithoutOrder(ctx, command.BatchSize())
	if err != nil {
		return 0, err
	}

	created := 0
	var errList []error
	for _, q := range quotes {
		if err = ctx.Err(); err != nil {
			errList = append(errList, err)
			break
		}

		cmd, cmdErr := NewAcceptQuoteCommand(q.ID())
		if cmdErr != nil {
			errList = append(errList, cmdErr)
			continue
		}

		result, acceptErr := h.accept.Handle(ctx, cmd)
		if acceptErr != nil {
			errList = append(errList, fmt.Errorf("quote %s: %w", q.ID(), acceptErr))
			continue
		}
		if result.OrderCreated {
			created++
		}
	}

	return created, errors.Join(errList...)
}
