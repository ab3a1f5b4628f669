package commands

import (
	"context"
)

type DeleteCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

func NewDeleteCompanyCommandHandler(uowFactory CompanyUoWFactory) DeleteCompanyCommandHandler {
	return DeleteCompanyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteCompanyCommandHandler) Handle(ctx context.Context, command DeleteCompanyCommand) error {
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

	if err := uow.CompanyRepository().Delete(ctx, command.CompanyID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
