package http

import (
	"errors"
	"net/http"
	"slices"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/application/usecases/queries"
	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var (
	productFields = []string{
		"productId", "productName", "description", "category",
		"priceRange", "quantityPerOrder", "attributes",
	}
	productFiles    = []string{"productImages", "measurementSpecs"}
	keptImageFields = []string{"existingProductImages", "existingMeasurementImages"}
)

// productForm is the decoded multipart body of a product create or update.
type productForm struct {
	details          product.Details
	attributes       []product.Attribute
	kept             product.Media
	productImages    []commands.Upload
	measurementSpecs []commands.Upload
}

func readProductForm(form *multipartForm) (productForm, error) {
	var raw []map[string]string
	var kept product.Media
	decodeErr := errors.Join(
		form.decode("attributes", &raw),
		form.decode("existingProductImages", &kept.ProductImages),
		form.decode("existingMeasurementImages", &kept.MeasurementSpecs),
	)
	if decodeErr != nil {
		return productForm{}, decodeErr
	}

	attributes := make([]product.Attribute, 0, len(raw))
	for _, fields := range raw {
		attributes = append(attributes, product.Attribute{Fields: fields})
	}

	productImages, err := form.uploads("productImages")
	if err != nil {
		return productForm{}, err
	}
	measurementSpecs, err := form.uploads("measurementSpecs")
	if err != nil {
		return productForm{}, err
	}

	return productForm{
		details: product.Details{
			Code:             form.value("productId"),
			Name:             form.value("productName"),
			Description:      form.value("description"),
			Category:         form.value("category"),
			PriceRange:       form.value("priceRange"),
			QuantityPerOrder: form.value("quantityPerOrder"),
		},
		attributes:       attributes,
		kept:             kept,
		productImages:    productImages,
		measurementSpecs: measurementSpecs,
	}, nil
}

// GetProducts handles GET /api/products.
func (s *Server) GetProducts(ctx echo.Context, params servers.GetProductsParams) error {
	query := queries.NewGetProductsQuery(deref(params.Category))

	products, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respondList(ctx, mapSlice(products, productFromView))
}

// GetProduct handles GET /api/products/{id}.
func (s *Server) GetProduct(ctx echo.Context, id servers.Id) error {
	productID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "", productFromView(view))
}

// CreateProduct handles POST /api/products. The images are uploaded before
// the product is stored; up to five of each kind are accepted.
func (s *Server) CreateProduct(ctx echo.Context) error {
	form, err := readMultipart(ctx, productFields, productFiles)
	if err != nil {
		return s.fail(ctx, err)
	}
	defer form.Close()

	fields, err := readProductForm(form)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(fields.details, fields.attributes, fields.productImages,
		fields.measurementSpecs)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusCreated, "Product created", productFromAggregate(p))
}

// UpdateProduct handles PUT /api/products/{id}. The existing* fields list
// the hosted images to keep; new files are appended after them.
func (s *Server) UpdateProduct(ctx echo.Context, id servers.Id) error {
	productID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	form, err := readMultipart(ctx, slices.Concat(keptImageFields, productFields), productFiles)
	if err != nil {
		return s.fail(ctx, err)
	}
	defer form.Close()

	fields, err := readProductForm(form)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, fields.details, fields.attributes, fields.kept,
		fields.productImages, fields.measurementSpecs)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Product updated", productFromAggregate(p))
}

// DeleteProduct handles DELETE /api/products/{id}.
func (s *Server) DeleteProduct(ctx echo.Context, id servers.Id) error {
	productID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Product deleted", nil)
}
