package commands

import (
	"context"
	"log/slog"
	"strings"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/core/ports"
	"sourcing/internal/pkg/clock"
	"sourcing/internal/pkg/errs"
)

// CreateProductCommandHandler uploads the product's images and stores the product.
//
// The duplicate code check runs before any upload so a rejected request costs
// nothing on the media host. Images uploaded for a product that could not be
// stored are destroyed again.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	media      productMedia
	clock      clock.Clock
}

func NewCreateProductCommandHandler(
	uowFactory ProductUoWFactory,
	storage ports.MediaStorage,
	clk clock.Clock,
	logger *slog.Logger,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		media:      productMedia{storage: storage, logger: logger},
		clock:      clk,
	}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, command CreateProductCommand) (*product.Product, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(command.Details().Code)
	exists, err := h.uowFactory.Create().ProductRepository().ExistsByCode(ctx, code, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError("productId", code)
	}

	productImages, err := h.media.upload(ctx, productImagesFolder, command.ProductImages())
	if err != nil {
		return nil, err
	}
	measurementSpecs, err := h.media.upload(ctx, measurementSpecFolder, command.MeasurementSpecs())
	if err != nil {
		h.media.destroy(ctx, productImages)
		return nil, err
	}
	media := product.Media{ProductImages: productImages, MeasurementSpecs: measurementSpecs}

	p, err := h.store(ctx, command, media)
	if err != nil {
		h.media.destroy(ctx, media.URLs())
		return nil, err
	}

	return p, nil
}

func (h CreateProductCommandHandler) store(
	ctx context.Context,
	command CreateProductCommand,
	media product.Media,
) (*product.Product, error) {
	p, err := product.NewProduct(kernel.NewUUID(), command.Details(), media, command.Attributes(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
