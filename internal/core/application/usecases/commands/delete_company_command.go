package commands

import (
	"errors"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/guard"
)

var ErrDeleteCompanyCommandIsNotConstructed = errors.New(
	"DeleteCompanyCommand must be created via NewDeleteCompanyCommand constructor",
)

type DeleteCompanyCommand struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCompanyCommand(companyID kernel.UUID) (DeleteCompanyCommand, error) {
	if err := companyID.Validate(); err != nil {
		return DeleteCompanyCommand{}, err
	}

	return DeleteCompanyCommand{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCompanyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCompanyCommandIsNotConstructed)
}

func (c DeleteCompanyCommand) CompanyID() kernel.UUID {
	return c.companyID
}
