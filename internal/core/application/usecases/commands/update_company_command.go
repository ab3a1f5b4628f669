package commands

import (
	"errors"

	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/errs"
	"sourcing/internal/pkg/guard"
)

var ErrUpdateCompanyCommandIsNotConstructed = errors.New(
	"UpdateCompanyCommand must be created via NewUpdateCompanyCommand constructor",
)

// UpdateCompanyCommand applies a whitelisted patch to a buyer company.
type UpdateCompanyCommand struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID
	patch     company.Patch

	guard guard.ConstructorGuard
}

func NewUpdateCompanyCommand(companyID kernel.UUID, patch company.Patch) (UpdateCompanyCommand, error) {
	var errList []error
	if err := companyID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if patch.IsEmpty() {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("patch", errors.New("no valid fields to update")))
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateCompanyCommand{}, err
	}

	return UpdateCompanyCommand{
		companyID: companyID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCompanyCommandIsNotConstructed)
}

func (c UpdateCompanyCommand) CompanyID() kernel.UUID { return c.companyID }
func (c UpdateCompanyCommand) Patch() company.Patch   { return c.patch }
