package http

import (
	"fmt"
	"net/http"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/application/usecases/queries"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/generated/servers"
	"sourcing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetOrderStatus handles GET /api/tracking/order-status/{id}.
func (s *Server) GetOrderStatus(ctx echo.Context, id servers.Id) error {
	orderID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respond(ctx, http.StatusOK, "", trackingFromView(view))
}

// UpdateOrderStatus handles PUT /api/tracking/order-status/{id}: one
// production step is set and, on completion, the overall status follows.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id servers.Id) error {
	var body servers.UpdateOrderStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceProductionStepCommand(orderID, body.Step, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.AdvanceProductionStep.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	message := fmt.Sprintf("Production step %q updated to %q", cmd.Step(), cmd.Status())
	if cmd.Status() == order.StepCompleted {
		message += fmt.Sprintf(" and order status updated to %q", o.Status())
	}

	return respond(ctx, http.StatusOK, message, orderFromAggregate(o))
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewGetOrdersQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return respondList(ctx, mapSlice(orders, orderFromView))
}
