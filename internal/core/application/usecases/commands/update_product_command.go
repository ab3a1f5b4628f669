package commands

import (
	"errors"
	"strings"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces a product's fields. The caller lists the hosted
// images it keeps and sends new files to append; kept plus new may not exceed
// five per kind.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	details    product.Details
	attributes []product.Attribute
	kept       product.Media

	productImages    []Upload
	measurementSpecs []Upload

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(
	productID kernel.UUID,
	details product.Details,
	attributes []product.Attribute,
	kept product.Media,
	productImages, measurementSpecs []Upload,
) (UpdateProductCommand, error) {
	var errList []error
	if err := productID.Validate(); err != nil {
		errList = append(errList, err)
	}
	errList = append(errList,
		validateProductDetails(details),
		product.CheckCapacity("productImages", len(kept.ProductImages), len(productImages)),
		product.CheckCapacity("measurementSpecs", len(kept.MeasurementSpecs), len(measurementSpecs)),
	)
	for _, f := range productImages {
		errList = append(errList, f.validate("productImages"))
	}
	for _, f := range measurementSpecs {
		errList = append(errList, f.validate("measurementSpecs"))
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:        productID,
		details:          details,
		attributes:       attributes,
		kept:             kept,
		productImages:    productImages,
		measurementSpecs: measurementSpecs,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID          { return c.productID }
func (c UpdateProductCommand) Details() product.Details        { return c.details }
func (c UpdateProductCommand) Attributes() []product.Attribute { return c.attributes }
func (c UpdateProductCommand) Kept() product.Media             { return c.kept }
func (c UpdateProductCommand) ProductImages() []Upload         { return c.productImages }
func (c UpdateProductCommand) MeasurementSpecs() []Upload      { return c.measurementSpecs }

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
