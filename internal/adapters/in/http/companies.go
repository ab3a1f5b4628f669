package http

import (
	"net/http"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/application/usecases/queries"
	"sourcing/internal/core/domain/model/company"
	"sourcing/internal/generated/servers"
	"sourcing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetCompanies handles GET /api/companies.
func (s *Server) GetCompanies(ctx echo.Context, params servers.GetCompaniesParams) error {
	query := queries.NewGetCompaniesQuery(deref(params.Status), deref(params.Search))

	companies, err := s.handlers.GetCompanies.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respondList(ctx, mapSlice(companies, companyFromView))
}

// GetCompany handles GET /api/companies/{id}.
func (s *Server) GetCompany(ctx echo.Context, id servers.Id) error {
	companyID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCompanyQuery(companyID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetCompany.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "", companyFromView(view))
}

// UpdateCompany handles PATCH /api/companies/{id}. Only the whitelisted
// fields of UpdateCompanyRequest can be changed.
func (s *Server) UpdateCompany(ctx echo.Context, id servers.Id) error {
	var body servers.UpdateCompanyRequest
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	companyID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	patch := company.Patch{
		HasBeenVerified:       body.HasBeenVerified,
		RegisteredCompanyName: body.RegisteredCompanyName,
		GSTTaxID:              body.GstTaxId,
		VerifiedBy:            body.VerifiedBy,
		RejectionReason:       body.RejectionReason,
	}
	if body.Status != nil {
		status, parseErr := company.ParseStatus(string(*body.Status))
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		patch.Status = &status
	}

	cmd, err := commands.NewUpdateCompanyCommand(companyID, patch)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.handlers.UpdateCompany.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Company updated", companyFromAggregate(c))
}

// DeleteCompany handles DELETE /api/companies/{id}.
func (s *Server) DeleteCompany(ctx echo.Context, id servers.Id) error {
	companyID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteCompanyCommand(companyID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteCompany.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "Company deleted", nil)
}
