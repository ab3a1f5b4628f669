package commands

import (
	"errors"
	"fmt"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/vendor"
	"sourcing/internal/pkg/errs"
	"sourcing/internal/pkg/guard"
)

var ErrChangeVendorStatusCommandIsNotConstructed = errors.New(
	"ChangeVendorStatusCommand must be created via NewChangeVendorStatusCommand constructor",
)

// ChangeVendorStatusCommand moves a vendor to approved, under-review or rejected.
type ChangeVendorStatusCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	status   vendor.Status

	guard guard.ConstructorGuard
}

func NewChangeVendorStatusCommand(vendorID kernel.UUID, status vendor.Status) (ChangeVendorStatusCommand, error) {
	cmd := ChangeVendorStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeVendorStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeVendorStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeVendorStatusCommandIsNotConstructed)
}

func (c ChangeVendorStatusCommand) VendorID() kernel.UUID { return c.vendorID }
func (c ChangeVendorStatusCommand) Status() vendor.Status { return c.status }

func (c *ChangeVendorStatusCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *ChangeVendorStatusCommand) setStatus(status vendor.Status) error {
	switch status {
	case vendor.Approved, vendor.UnderReview, vendor.Rejected:
		c.status = status
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("vendors cannot be moved to %q", status))
	}
}
