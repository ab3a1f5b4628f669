package commands

import (
	"errors"

	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/pkg/errs"
	"sourcing/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalog together with its images.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	details          product.Details
	attributes       []product.Attribute
	productImages    []Upload
	measurementSpecs []Upload

	guard guard.ConstructorGuard
}

// NewCreateProductCommand checks the required fields and the image limits
// before anything is uploaded.
func NewCreateProductCommand(
	details product.Details,
	attributes []product.Attribute,
	productImages, measurementSpecs []Upload,
) (CreateProductCommand, error) {
	errList := []error{
		validateProductDetails(details),
		product.CheckCapacity("productImages", 0, len(productImages)),
		product.CheckCapacity("measurementSpecs", 0, len(measurementSpecs)),
	}
	for _, f := range productImages {
		errList = append(errList, f.validate("productImages"))
	}
	for _, f := range measurementSpecs {
		errList = append(errList, f.validate("measurementSpecs"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		details:          details,
		attributes:       attributes,
		productImages:    productImages,
		measurementSpecs: measurementSpecs,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Details() product.Details        { return c.details }
func (c CreateProductCommand) Attributes() []product.Attribute { return c.attributes }
func (c CreateProductCommand) ProductImages() []Upload         { return c.productImages }
func (c CreateProductCommand) MeasurementSpecs() []Upload      { return c.measurementSpecs }

func validateProductDetails(d product.Details) error {
	var errList []error
	if isBlank(d.Code) {
		errList = append(errList, errs.NewValueIsRequiredError("productId"))
	}
	if isBlank(d.Name) {
		errList = append(errList, errs.NewValueIsRequiredError("productName"))
	}
	return errors.Join(errList...)
}
