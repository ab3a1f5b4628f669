package commands

import (
	"context"
	"log/slog"

	"sourcing/internal/core/ports"
)

// DeleteProductCommandHandler removes the product record first and then, best
// effort, its hosted images.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	media      productMedia
}

func NewDeleteProductCommandHandler(
	uowFactory ProductUoWFactory,
	storage ports.MediaStorage,
	logger *slog.Logger,
) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		media:      productMedia{storage: storage, logger: logger},
	}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, command DeleteProductCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()

	p, err := repo.Get(ctx, command.ProductID())
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, command.ProductID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.media.destroy(ctx, p.Media().URLs())
	return nil
}
