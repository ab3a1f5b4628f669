package queries

import (
	"context"

	"sourcing/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCompanyQueryHandler struct {
	db *gorm.DB
}

func NewGetCompanyQueryHandler(db *gorm.DB) GetCompanyQueryHandler {
	return GetCompanyQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown company.
func (h GetCompanyQueryHandler) Handle(ctx context.Context, query GetCompanyQuery) (CompanyView, error) {
	if err := query.Validate(); err != nil {
		return CompanyView{}, err
	}

	companies, err := scanCompanies(ctx, h.db, "get company", companyColumns+"\n\t\tWHERE id = ?", query.CompanyID().Bytes())
	if err != nil {
		return CompanyView{}, err
	}
	if len(companies) == 0 {
		return CompanyView{}, errs.NewObjectNotFoundError("companyId", query.CompanyID())
	}
	return companies[0], nil
}
