package commands

import (
	"errors"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/guard"
)

var ErrAdvanceProductionStepCommandIsNotConstructed = errors.New(
	"AdvanceProductionStepCommand must be created via NewAdvanceProductionStepCommand constructor",
)

// AdvanceProductionStepCommand sets one production step of an order to a new status.
// Step and status arrive as wire strings and are checked against the fixed
// sets when the command is built, so an invalid request never reaches storage.
//
// Example:
//
//	cmd, err := NewAdvanceProductionStepCommand(orderID, "production", "Completed")
//	if errors.Is(err, order.ErrInvalidStep) {
//	    // 400: unknown step
//	}
type AdvanceProductionStepCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	step    order.StepName
	status  order.StepStatus

	guard guard.ConstructorGuard
}

// NewAdvanceProductionStepCommand validates the order id, the step name and the step status.
// All failures are joined so the caller can report every offending field.
func NewAdvanceProductionStepCommand(orderID kernel.UUID, step, status string) (AdvanceProductionStepCommand, error) {
	cmd := AdvanceProductionStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStep(step),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceProductionStepCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceProductionStepCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceProductionStepCommandIsNotConstructed)
}

func (c AdvanceProductionStepCommand) OrderID() kernel.UUID     { return c.orderID }
func (c AdvanceProductionStepCommand) Step() order.StepName     { return c.step }
func (c AdvanceProductionStepCommand) Status() order.StepStatus { return c.status }

func (c *AdvanceProductionStepCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceProductionStepCommand) setStep(step string) error {
	name, err := order.ParseStepName(step)
	if err != nil {
		return err
	}
	c.step = name
	return nil
}

func (c *AdvanceProductionStepCommand) setStatus(status string) error {
	s, err := order.ParseStepStatus(status)
	if err != nil {
		return err
	}
	c.status = s
	return nil
}
