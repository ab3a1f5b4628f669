package order

import (
	"errors"
	"strings"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Terms are the commercial values copied from the accepted quote when the
// order is created. They are immutable for the lifetime of the order.
type Terms struct {
	// PieceCount is the quantity requested by the buyer.
	PieceCount int

	// UnitPrice is the buyer's target price.
	UnitPrice kernel.Money

	// LeadTime is free text such as "30 days".
	LeadTime string

	// DesignImageURL is the first product image of the quote; it may be empty.
	DesignImageURL string
}

func (t Terms) validate() error {
	var errList []error
	if t.PieceCount < 0 {
		errList = append(errList, errs.NewValueIsInvalidError("pieceCount"))
	}
	if err := t.UnitPrice.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("unitPrice", err))
	}
	return errors.Join(errList...)
}

// StepChange is the partial update produced by AdvanceStep. It carries only
// what has to be written: the step status and, when one was derived, the new
// overall status.
type StepChange struct {
	OrderID    kernel.UUID
	Step       StepName
	StepStatus StepStatus

	// OverallStatus is nil when the change leaves the overall status untouched.
	OverallStatus *Status
}

// Order is the production record of a single accepted quote. It is the aggregate
// root owning the production step ledger and the overall status derived from it.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and order number
//   - References exactly one quote
//   - Carries exactly eight production steps
//   - Overall status only changes as a consequence of a step update
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable reference, e.g. ORD-1A2B3C4D
	number Number

	// quoteID references the originating quote
	quoteID kernel.UUID

	// status is the overall status derived from steps
	status Status

	// terms are copied from the quote at creation
	terms Terms

	// steps is the production step ledger
	steps Steps

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order for an accepted quote. The order starts Confirmed
// with every production step Not Started.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(), quoteID, terms, time.Now())
func NewOrder(id kernel.UUID, number Number, quoteID kernel.UUID, terms Terms, now time.Time) (*Order, error) {
	o := &Order{
		status:        Confirmed,
		steps:         NewSteps(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setQuoteID(quoteID),
		o.setTerms(terms),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. The stored overall
// status is taken as is: it is the result of earlier step updates and is not
// re-derived on load.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	quoteID kernel.UUID,
	status Status,
	terms Terms,
	steps Steps,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		steps:         steps,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setQuoteID(quoteID),
		o.setStatus(status),
		o.setTerms(terms),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() Number {
	return o.number
}

// QuoteID returns the originating quote's identifier.
func (o *Order) QuoteID() kernel.UUID {
	return o.quoteID
}

// Status returns the overall status.
func (o *Order) Status() Status {
	return o.status
}

// Terms returns the commercial terms copied from the quote.
func (o *Order) Terms() Terms {
	return o.terms
}

// Steps returns a copy of the production step ledger.
func (o *Order) Steps() Steps {
	return o.steps
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AdvanceStep sets one production step to a new status and, when the new status
// is Completed, re-derives the overall status from the merged ledger.
//
// Business rules:
//   - Any step may move to any status, including Completed -> Not Started
//   - Only a transition to Completed can change the overall status
//   - Reverting a step never regresses the overall status
//   - Delivered is never produced here
//
// The order is updated in memory and the returned StepChange describes the
// single partial write the caller must persist.
//
// Returns:
//   - ErrInvalidStep if name is not one of the eight steps
//   - ErrInvalidStepStatus if status is not a valid step status
func (o *Order) AdvanceStep(name StepName, status StepStatus, now time.Time) (StepChange, error) {
	if err := o.Validate(); err != nil {
		return StepChange{}, err
	}

	merged, err := o.steps.With(name, status)
	if err != nil {
		return StepChange{}, err
	}

	change := StepChange{
		OrderID:    o.id,
		Step:       name,
		StepStatus: status,
	}

	if status == StepCompleted {
		if derived, ok := DeriveStatus(merged); ok {
			change.OverallStatus = &derived
			o.status = derived
		}
	}

	o.steps = merged
	o.updatedAt = now

	return change, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("quoteId", err)
	}
	o.quoteID = quoteID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTerms(terms Terms) error {
	if err := terms.validate(); err != nil {
		return err
	}
	terms.LeadTime = strings.TrimSpace(terms.LeadTime)
	o.terms = terms
	return nil
}
