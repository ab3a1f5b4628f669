package quote

import (
	"errors"
	"strings"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/errs"
)

// DefaultComments is stored on every quote until an admin rejects it with their own text.
const DefaultComments = "Sorry,We can not process your order."

var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote")

// Files groups the uploaded attachment URLs of a quote.
type Files struct {
	Techpack      string
	ProductImages []string
	ColorSwatches []string
	Fabrics       []string
	Miscellaneous []string
}

// Details are the buyer-supplied fields of a quote.
type Details struct {
	ShippingAddress   string
	Quantity          int
	LeadTime          string
	TargetPrice       kernel.Money
	FabricComposition string
	GSM               string
	OrderNotes        string
	OrderSample       bool
	SampleCount       int
}

// Quote is a buyer's request for quote reviewed by the admin team.
//
// Quote follows these invariants:
//   - Required details are present and quantity is positive
//   - Comments are never blank
//   - Once Accepted it cannot be rejected, because an order references it
type Quote struct {
	id        kernel.UUID
	details   Details
	files     Files
	status    Status
	comments  string
	createdAt time.Time

	isConstructed bool
}

// NewQuote registers a Pending quote.
func NewQuote(id kernel.UUID, details Details, files Files, now time.Time) (*Quote, error) {
	return RestoreQuote(id, details, files, Pending, DefaultComments, now)
}

// RestoreQuote rebuilds a quote from persisted state.
func RestoreQuote(
	id kernel.UUID,
	details Details,
	files Files,
	status Status,
	comments string,
	createdAt time.Time,
) (*Quote, error) {
	if strings.TrimSpace(comments) == "" {
		comments = DefaultComments
	}

	q := &Quote{
		files:         files,
		comments:      comments,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		q.setID(id),
		q.setDetails(details),
		q.setStatus(status),
	); err != nil {
		return nil, err
	}

	return q, nil
}

func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

func (q *Quote) ID() kernel.UUID      { return q.id }
func (q *Quote) Details() Details     { return q.details }
func (q *Quote) Files() Files         { return q.files }
func (q *Quote) Status() Status       { return q.status }
func (q *Quote) Comments() string     { return q.comments }
func (q *Quote) CreatedAt() time.Time { return q.createdAt }

// Accept marks the quote Accepted. Accepting an already accepted quote is a
// no-op and reports false, so callers can tell a first acceptance from a repeat.
// A rejected quote may be reconsidered.
func (q *Quote) Accept() (changed bool, err error) {
	if err := q.Validate(); err != nil {
		return false, err
	}
	if q.status == Accepted {
		return false, nil
	}
	q.status = Accepted
	return true, nil
}

// Reject declines the quote with the admin's comments.
//
// Returns:
//   - ValueIsRequiredError if comments are blank
//   - ConflictError if the quote is already accepted
func (q *Quote) Reject(comments string) error {
	if err := q.Validate(); err != nil {
		return err
	}

	comments = strings.TrimSpace(comments)
	if comments == "" {
		return errs.NewValueIsRequiredError("comments")
	}
	if q.status == Accepted {
		return errs.NewConflictError("quoteId", q.id.String())
	}

	q.status = Rejected
	q.comments = comments
	return nil
}

// OrderTerms returns the values an order copies from this quote: quantity,
// target price, lead time and the first product image as the design image.
func (q *Quote) OrderTerms() order.Terms {
	terms := order.Terms{
		PieceCount: q.details.Quantity,
		UnitPrice:  q.details.TargetPrice,
		LeadTime:   q.details.LeadTime,
	}
	if len(q.files.ProductImages) > 0 {
		terms.DesignImageURL = q.files.ProductImages[0]
	}
	return terms
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	q.id = id
	return nil
}

func (q *Quote) setDetails(d Details) error {
	var errList []error

	d.ShippingAddress = strings.TrimSpace(d.ShippingAddress)
	d.LeadTime = strings.TrimSpace(d.LeadTime)
	d.FabricComposition = strings.TrimSpace(d.FabricComposition)
	d.GSM = strings.TrimSpace(d.GSM)

	if d.ShippingAddress == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shippingAddress"))
	}
	if d.LeadTime == "" {
		errList = append(errList, errs.NewValueIsRequiredError("leadTime"))
	}
	if d.FabricComposition == "" {
		errList = append(errList, errs.NewValueIsRequiredError("fabricComposition"))
	}
	if d.GSM == "" {
		errList = append(errList, errs.NewValueIsRequiredError("gsm"))
	}
	if d.Quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidError("quantity"))
	}
	if d.SampleCount < 0 {
		errList = append(errList, errs.NewValueIsInvalidError("sampleCount"))
	}
	if err := d.TargetPrice.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("targetPrice", err))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}
	q.details = d
	return nil
}

func (q *Quote) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}
