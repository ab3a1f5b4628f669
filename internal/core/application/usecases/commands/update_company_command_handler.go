package commands

import (
	"context"

	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/pkg/clock"
)

type UpdateCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
	clock      clock.Clock
}

func NewUpdateCompanyCommandHandler(uowFactory CompanyUoWFactory, clk clock.Clock) UpdateCompanyCommandHandler {
	return UpdateCompanyCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle loads the company, applies the patch and persists it.
func (h UpdateCompanyCommandHandler) Handle(ctx context.Context, command UpdateCompanyCommand) (*company.Company, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	companyRepo := uow.CompanyRepository()

	c, err := companyRepo.Get(ctx, command.CompanyID())
	if err != nil {
		return nil, err
	}

	if err = c.ApplyPatch(command.Patch(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = companyRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
