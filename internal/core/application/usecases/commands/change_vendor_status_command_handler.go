package commands

import (
	"context"

	"sourcing/internal/core/domain/model/vendor"
	"sourcing/internal/pkg/clock"
)

// ChangeVendorStatusCommandHandler applies an admin verification decision to a vendor.
type ChangeVendorStatusCommandHandler struct {
	uowFactory VendorUoWFactory
	clock      clock.Clock
}

func NewChangeVendorStatusCommandHandler(uowFactory VendorUoWFactory, clk clock.Clock) ChangeVendorStatusCommandHandler {
	return ChangeVendorStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h ChangeVendorStatusCommandHandler) Handle(
	ctx context.Context,
	command ChangeVendorStatusCommand,
) (*vendor.Vendor, error) {
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

	vendorRepo := uow.VendorRepository()

	v, err := vendorRepo.Get(ctx, command.VendorID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	switch command.Status() {
	case vendor.Approved:
		err = v.Approve(now)
	case vendor.UnderReview:
		err = v.MarkUnderReview(now)
	default:
		err = v.Reject(now)
	}
	if err != nil {
		return nil, err
	}

	if err = vendorRepo.UpdateStatus(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
