package queries

import (
	"errors"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists orders newest first, optionally narrowed to one
// overall status.
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery accepts an empty status for "every order".
func NewGetOrdersQuery(status string) (GetOrdersQuery, error) {
	query := GetOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return query, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return GetOrdersQuery{}, err
	}
	query.status = &parsed
	return query, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the filter and whether one was set.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

type GetOrdersQueryResponse struct {
	ID             kernel.UUID
	OrderNumber    string
	QuoteID        kernel.UUID
	Status         order.Status
	PieceCount     int
	UnitPrice      kernel.Money
	LeadTime       string
	DesignImageURL string
	Steps          order.Steps
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
