package commands

import (
	"errors"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/guard"
)

var ErrAcceptQuoteCommandIsNotConstructed = errors.New(
	"AcceptQuoteCommand must be created via NewAcceptQuoteCommand constructor",
)

// AcceptQuoteCommand accepts a quote and opens its order.
type AcceptQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptQuoteCommand(quoteID kernel.UUID) (AcceptQuoteCommand, error) {
	if err := quoteID.Validate(); err != nil {
		return AcceptQuoteCommand{}, err
	}

	return AcceptQuoteCommand{
		quoteID: quoteID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptQuoteCommand) Validate() error {
	return c.guard.Validate(ErrAcceptQuoteCommandIsNotConstructed)
}

func (c AcceptQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}
