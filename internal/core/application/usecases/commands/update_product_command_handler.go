package commands

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"sourcing/internal/core/domain/model/product"
	"sourcing/internal/core/ports"
	"sourcing/internal/pkg/clock"
	"sourcing/internal/pkg/errs"
)

// UpdateProductCommandHandler uploads new images, stores the updated product
// and then destroys the hosted images the caller dropped. The kept list is
// checked again against the locked row, so a concurrent update that dropped
// one of them fails this one instead of resurrecting a destroyed URL.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	media      productMedia
	clock      clock.Clock
}

func NewUpdateProductCommandHandler(
	uowFactory ProductUoWFactory,
	storage ports.MediaStorage,
	clk clock.Clock,
	logger *slog.Logger,
) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		media:      productMedia{storage: storage, logger: logger},
		clock:      clk,
	}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, command UpdateProductCommand) (*product.Product, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().ProductRepository()

	current, err := repo.Get(ctx, command.ProductID())
	if err != nil {
		return nil, err
	}
	if err = checkKept(current.Media(), command.Kept()); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(command.Details().Code)
	id := command.ProductID()
	exists, err := repo.ExistsByCode(ctx, code, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError("productId", code)
	}

	newImages, err := h.media.upload(ctx, productImagesFolder, command.ProductImages())
	if err != nil {
		return nil, err
	}
	newSpecs, err := h.media.upload(ctx, measurementSpecFolder, command.MeasurementSpecs())
	if err != nil {
		h.media.destroy(ctx, newImages)
		return nil, err
	}

	media := product.Media{
		ProductImages:    append(slices.Clone(command.Kept().ProductImages), newImages...),
		MeasurementSpecs: append(slices.Clone(command.Kept().MeasurementSpecs), newSpecs...),
	}

	p, removed, err := h.store(ctx, command, media)
	if err != nil {
		h.media.destroy(ctx, append(newImages, newSpecs...))
		return nil, err
	}

	h.media.destroy(ctx, removed)
	return p, nil
}

func (h UpdateProductCommandHandler) store(
	ctx context.Context,
	command UpdateProductCommand,
	media product.Media,
) (*product.Product, []string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()

	p, err := repo.GetForUpdate(ctx, command.ProductID())
	if err != nil {
		return nil, nil, err
	}
	if err = checkKept(p.Media(), command.Kept()); err != nil {
		return nil, nil, err
	}

	removed := p.Removed(media)
	if err = p.Update(command.Details(), media, command.Attributes(), h.clock.Now()); err != nil {
		return nil, nil, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return p, removed, nil
}

// checkKept rejects kept URLs that the product does not currently have.
func checkKept(current, kept product.Media) error {
	for _, u := range kept.ProductImages {
		if !slices.Contains(current.ProductImages, u) {
			return errs.NewValueIsInvalidErrorWithCause("existingProductImages", fmt.Errorf("%s is not an image of this product", u))
		}
	}
	for _, u := range kept.MeasurementSpecs {
		if !slices.Contains(current.MeasurementSpecs, u) {
			return errs.NewValueIsInvalidErrorWithCause("existingMeasurementImages", fmt.Errorf("%s is not an image of this product", u))
		}
	}
	return nil
}
