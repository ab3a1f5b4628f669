package commands

import (
	"errors"
	"strings"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/errs"
	"sourcing/internal/pkg/guard"
)

var ErrRejectQuoteCommandIsNotConstructed = errors.New(
	"RejectQuoteCommand must be created via NewRejectQuoteCommand constructor",
)

// RejectQuoteCommand declines a quote with the admin's comments.
type RejectQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID  kernel.UUID
	comments string

	guard guard.ConstructorGuard
}

func NewRejectQuoteCommand(quoteID kernel.UUID, comments string) (RejectQuoteCommand, error) {
	cmd := RejectQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setComments(comments),
	); err != nil {
		return RejectQuoteCommand{}, err
	}

	return cmd, nil
}

func (c RejectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRejectQuoteCommandIsNotConstructed)
}

func (c RejectQuoteCommand) QuoteID() kernel.UUID { return c.quoteID }
func (c RejectQuoteCommand) Comments() string     { return c.comments }

func (c *RejectQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *RejectQuoteCommand) setComments(comments string) error {
	comments = strings.TrimSpace(comments)
	if comments == "" {
		return errs.NewValueIsRequiredError("comments")
	}
	c.comments = comments
	return nil
}
