package commands

import (
	"errors"

	"sourcing/internal/pkg/errs"
	"sourcing/internal/pkg/guard"
)

const maxReconcileBatch = 500

var ErrReconcileAcceptedQuotesCommandIsNotConstructed = errors.New(
	"ReconcileAcceptedQuotesCommand must be created via NewReconcileAcceptedQuotesCommand constructor",
)

// ReconcileAcceptedQuotesCommand creates the missing orders of accepted quotes,
// e.g. quotes accepted before order creation was part of acceptance.
type ReconcileAcceptedQuotesCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewReconcileAcceptedQuotesCommand bounds the work of one run to batchSize quotes.
func NewReconcileAcceptedQuotesCommand(batchSize int) (ReconcileAcceptedQuotesCommand, error) {
	if batchSize <= 0 || batchSize > maxReconcileBatch {
		return ReconcileAcceptedQuotesCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxReconcileBatch)
	}

	return ReconcileAcceptedQuotesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileAcceptedQuotesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileAcceptedQuotesCommandIsNotConstructed)
}

func (c ReconcileAcceptedQuotesCommand) BatchSize() int {
	return c.batchSize
}
