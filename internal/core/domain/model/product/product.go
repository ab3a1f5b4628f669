package product

import (
	"errors"
	"strings"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/errs"
)

// MaxImagesPerKind caps product images and measurement spec images separately.
const MaxImagesPerKind = 5

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Attribute is one free-form group of catalog attributes, e.g. {"size": "M", "fit": "slim"}.
type Attribute struct {
	Fields map[string]string `json:"fields"`
}

// Details are the editable text fields of a catalog product.
type Details struct {
	// Code is the business identifier (productId) chosen by the catalog team; unique.
	Code             string
	Name             string
	Description      string
	Category         string
	PriceRange       string
	QuantityPerOrder string
}

// Media lists hosted image URLs by kind.
type Media struct {
	ProductImages    []string
	MeasurementSpecs []string
}

// URLs returns every hosted URL of the product, product images first.
func (m Media) URLs() []string {
	urls := make([]string, 0, len(m.ProductImages)+len(m.MeasurementSpecs))
	urls = append(urls, m.ProductImages...)
	return append(urls, m.MeasurementSpecs...)
}

// CheckCapacity rejects a change that would leave more than MaxImagesPerKind
// images of a kind: kept existing images plus new uploads are counted together.
// Callers run it before uploading anything.
func CheckCapacity(kind string, kept, uploads int) error {
	if total := kept + uploads; total > MaxImagesPerKind {
		return errs.NewValueIsOutOfRangeError(kind, total, 0, MaxImagesPerKind)
	}
	return nil
}

// Product is an item of the sourcing catalog.
type Product struct {
	id         kernel.UUID
	details    Details
	media      Media
	attributes []Attribute
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewProduct creates a catalog product.
func NewProduct(id kernel.UUID, details Details, media Media, attributes []Attribute, now time.Time) (*Product, error) {
	return RestoreProduct(id, details, media, attributes, now, now)
}

// RestoreProduct rebuilds a product from persisted state.
func RestoreProduct(
	id kernel.UUID,
	details Details,
	media Media,
	attributes []Attribute,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p := &Product{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("id", err))
	}
	errList = append(errList, p.set(details, media, attributes))
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID         { return p.id }
func (p *Product) Details() Details        { return p.details }
func (p *Product) Media() Media            { return p.media }
func (p *Product) Attributes() []Attribute { return p.attributes }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }

// Update replaces the product's fields. media must already combine the images
// the caller kept with the ones uploaded for this update.
func (p *Product) Update(details Details, media Media, attributes []Attribute, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := p.set(details, media, attributes); err != nil {
		return err
	}
	p.updatedAt = now
	return nil
}

// Removed returns the URLs present on the product but missing from next.
func (p *Product) Removed(next Media) []string {
	keep := make(map[string]struct{})
	for _, u := range next.URLs() {
		keep[u] = struct{}{}
	}

	var removed []string
	for _, u := range p.media.URLs() {
		if _, ok := keep[u]; !ok {
			removed = append(removed, u)
		}
	}
	return removed
}

func (p *Product) set(d Details, m Media, attributes []Attribute) error {
	d.Code = strings.TrimSpace(d.Code)
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	d.PriceRange = strings.TrimSpace(d.PriceRange)
	d.QuantityPerOrder = strings.TrimSpace(d.QuantityPerOrder)

	var errList []error
	if d.Code == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productId"))
	}
	if d.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productName"))
	}
	errList = append(errList,
		CheckCapacity("productImages", len(m.ProductImages), 0),
		CheckCapacity("measurementSpecs", len(m.MeasurementSpecs), 0),
	)
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if attributes == nil {
		attributes = []Attribute{}
	}
	p.details = d
	p.media = m
	p.attributes = attributes
	return nil
}
