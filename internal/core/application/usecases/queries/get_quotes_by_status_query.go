package queries

import (
	"errors"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/quote"
	"sourcing/internal/pkg/guard"
)

var (
	ErrGetQuotesByStatusQueryIsNotConstructed = errors.New(
		"GetQuotesByStatusQuery must be created via NewGetQuotesByStatusQuery constructor",
	)
)

// GetQuotesByStatusQuery lists the quotes in one review state, newest first,
// together with counters over every quote.
type GetQuotesByStatusQuery struct {
	status quote.Status

	guard guard.ConstructorGuard
}

func NewGetQuotesByStatusQuery(status quote.Status) (GetQuotesByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetQuotesByStatusQuery{}, err
	}

	return GetQuotesByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetQuotesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotesByStatusQueryIsNotConstructed)
}

func (q GetQuotesByStatusQuery) Status() quote.Status { return q.status }

// QuoteStats counts quotes per status. Total covers every status.
type QuoteStats struct {
	Total    int
	Pending  int
	Accepted int
	Rejected int
}

// QuoteView is a quote as listed to the admin. Comments hold the rejection
// text or the default apology.
type QuoteView struct {
	ID        kernel.UUID
	Details   quote.Details
	Files     quote.Files
	Status    quote.Status
	Comments  string
	CreatedAt time.Time
}

type GetQuotesByStatusQueryResponse struct {
	Quotes []QuoteView
	Stats  QuoteStats
}
