package commands

import (
	"context"

	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/clock"
)

// AdvanceProductionStepCommandHandler is the only mutation entry point for
// production tracking.
//
// Flow: lock the order row, merge the step change in memory, derive the overall
// status when the step was completed, write one partial update, commit.
// The order row stays locked for the whole read-merge-write, so two concurrent
// updates of the same order cannot overwrite each other's step.
//
// Example:
//
//	handler := NewAdvanceProductionStepCommandHandler(uowFactory, clock.NewSystem())
//	cmd, _ := NewAdvanceProductionStepCommand(orderID, "production", "Completed")
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404
//	case err != nil:
//	    // store failure
//	default:
//	    fmt.Println(o.Status()) // "In Production"
//	}
type AdvanceProductionStepCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

func NewAdvanceProductionStepCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
) AdvanceProductionStepCommandHandler {
	return AdvanceProductionStepCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle applies the command and returns the order as written.
func (h AdvanceProductionStepCommandHandler) Handle(
	ctx context.Context,
	command AdvanceProductionStepCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	change, err := o.AdvanceStep(command.Step(), command.Status(), now)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateProgress(ctx, change, now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
