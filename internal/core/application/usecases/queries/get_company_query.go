package queries

import (
	"errors"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/pkg/errs"
	"sourcing/internal/pkg/guard"
)

var (
	ErrGetCompanyQueryIsNotConstructed = errors.New(
		"GetCompanyQuery must be created via NewGetCompanyQuery constructor",
	)
)

type GetCompanyQuery struct {
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCompanyQuery(companyID kernel.UUID) (GetCompanyQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetCompanyQuery{}, errs.NewValueIsRequiredErrorWithCause("companyId", err)
	}

	return GetCompanyQuery{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCompanyQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyQueryIsNotConstructed)
}

func (q GetCompanyQuery) CompanyID() kernel.UUID { return q.companyID }
