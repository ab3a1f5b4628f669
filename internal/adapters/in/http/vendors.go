package http

import (
	"net/http"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/application/usecases/queries"
	"sourcing/internal/core/domain/model/vendor"
	"sourcing/internal/generated/servers"
	"sourcing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetVendors handles GET /api/vendors.
func (s *Server) GetVendors(ctx echo.Context, params servers.GetVendorsParams) error {
	query, err := queries.NewGetVendorsQuery(deref(params.Status), deref(params.Search))
	if err != nil {
		return s.fail(ctx, err)
	}

	vendors, err := s.handlers.GetVendors.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respondList(ctx, mapSlice(vendors, vendorSummaryFromView))
}

// GetVendor handles GET /api/vendors/{id}.
func (s *Server) GetVendor(ctx echo.Context, id servers.Id) error {
	vendorID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetVendorQuery(vendorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetVendor.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "", vendorDetailFromView(view))
}

// ApproveVendor handles POST /api/vendors/approve.
func (s *Server) ApproveVendor(ctx echo.Context) error {
	return s.changeVendorStatus(ctx, vendor.Approved, "Vendor approved successfully")
}

// MarkVendorUnderReview handles POST /api/vendors/under-review.
func (s *Server) MarkVendorUnderReview(ctx echo.Context) error {
	return s.changeVendorStatus(ctx, vendor.UnderReview, "Vendor marked as under review")
}

// RejectVendor handles POST /api/vendors/reject.
func (s *Server) RejectVendor(ctx echo.Context) error {
	return s.changeVendorStatus(ctx, vendor.Rejected, "Vendor rejected")
}

func (s *Server) changeVendorStatus(ctx echo.Context, status vendor.Status, message string) error {
	var body servers.VendorStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	vendorID, err := kernelID(body.VendorId)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsRequiredErrorWithCause("vendorId", err))
	}

	cmd, err := commands.NewChangeVendorStatusCommand(vendorID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	v, err := s.handlers.ChangeVendorStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, message, vendorStatusJSON{
		ID:           v.ID().String(),
		Status:       v.Status().String(),
		Verification: string(v.Status().Verification()),
	})
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
