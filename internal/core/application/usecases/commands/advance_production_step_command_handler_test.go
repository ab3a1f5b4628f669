package commands_test

import (
	"errors"
	"testing"

	"sourcing/internal/core/application/usecases/commands"
	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/clock"
	"sourcing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status, completed ...order.StepName) *order.Order {
	t.Helper()

	steps := order.NewSteps()
	for _, name := range completed {
		var err error
		steps, err = steps.With(name, order.StepCompleted)
		require.NoError(t, err)
	}

	price, err := kernel.NewMoney(decimal.RequireFromString("4.75"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), order.NewNumber(), kernel.NewUUID(), status,
		order.Terms{PieceCount: 500, UnitPrice: price, LeadTime: "30 days"}, steps, now, now)
	require.NoError(t, err)
	return o
}

func statusPtr(s order.Status) *order.Status { return &s }

func advance(t *testing.T, stored *order.Order, step, status string) (*order.Order, *MockOrderRepository, *MockUoW, error) {
	t.Helper()

	ctx := t.Context()
	cmd, err := commands.NewAdvanceProductionStepCommand(stored.ID(), step, status)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once()
	repo.On("UpdateProgress", ctx, mock.AnythingOfType("order.StepChange"), now).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAdvanceProductionStepCommandHandler(orderFactory{newFactory(uow)}, clock.NewFixed(now))
	o, err := h.Handle(ctx, cmd)
	return o, repo, uow, err
}

func TestAdvanceProductionStepCommandHandler_FirstCompletedStep(t *testing.T) {
	stored := storedOrder(t, order.Confirmed)

	o, repo, uow, err := advance(t, stored, "production", "Completed")

	require.NoError(t, err)
	step, _ := o.Steps().Get(order.Production)
	assert.Equal(t, order.StepCompleted, step)
	assert.Equal(t, order.InProduction, o.Status())
	repo.AssertCalled(t, "UpdateProgress", mock.Anything, order.StepChange{
		OrderID:       stored.ID(),
		Step:          order.Production,
		StepStatus:    order.StepCompleted,
		OverallStatus: statusPtr(order.InProduction),
	}, now)
	uow.AssertExpectations(t)
}

func TestAdvanceProductionStepCommandHandler_LastCompletedStep(t *testing.T) {
	names := order.AllStepNames()
	stored := storedOrder(t, order.InProduction, names[:7]...)

	o, repo, _, err := advance(t, stored, "confirmPaymentTerms", "Completed")

	require.NoError(t, err)
	assert.Equal(t, order.Completed, o.Status())
	repo.AssertCalled(t, "UpdateProgress", mock.Anything, order.StepChange{
		OrderID:       stored.ID(),
		Step:          order.ConfirmPaymentTerms,
		StepStatus:    order.StepCompleted,
		OverallStatus: statusPtr(order.Completed),
	}, now)
}

func TestAdvanceProductionStepCommandHandler_RevertKeepsOverallStatus(t *testing.T) {
	stored := storedOrder(t, order.InProduction, order.Production)

	o, repo, _, err := advance(t, stored, "production", "Not Started")

	require.NoError(t, err)
	step, _ := o.Steps().Get(order.Production)
	assert.Equal(t, order.NotStarted, step)
	assert.Equal(t, order.InProduction, o.Status())
	repo.AssertCalled(t, "UpdateProgress", mock.Anything, order.StepChange{
		OrderID:    stored.ID(),
		Step:       order.Production,
		StepStatus: order.NotStarted,
	}, now)
}

func TestAdvanceProductionStepCommandHandler_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAdvanceProductionStepCommand(id, "production", "Completed")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAdvanceProductionStepCommandHandler(orderFactory{newFactory(uow)}, clock.NewFixed(now))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAdvanceProductionStepCommandHandler_InvalidInputNeverReachesStore(t *testing.T) {
	for _, tc := range []struct{ step, status string }{
		{"shipping", "Completed"},
		{"production", "Finished"},
	} {
		_, err := commands.NewAdvanceProductionStepCommand(kernel.NewUUID(), tc.step, tc.status)
		require.Error(t, err)
	}

	// A zero command is refused before a unit of work is created.
	h := commands.NewAdvanceProductionStepCommandHandler(orderFactory{newFactory()}, clock.NewFixed(now))
	_, err := h.Handle(t.Context(), commands.AdvanceProductionStepCommand{})

	require.ErrorIs(t, err, commands.ErrAdvanceProductionStepCommandIsNotConstructed)
}

func TestAdvanceProductionStepCommandHandler_StoreUnavailable(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Confirmed)
	cmd, err := commands.NewAdvanceProductionStepCommand(stored.ID(), "packaging", "Completed")
	require.NoError(t, err)

	storeErr := errs.NewStoreUnavailableError("update order progress", errors.New("connection reset"))
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("UpdateProgress", ctx, mock.Anything, now).Return(storeErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAdvanceProductionStepCommandHandler(orderFactory{newFactory(uow)}, clock.NewFixed(now))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAdvanceProductionStepCommandHandler_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceProductionStepCommand(kernel.NewUUID(), "production", "Completed")
	require.NoError(t, err)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewAdvanceProductionStepCommandHandler(orderFactory{newFactory(uow)}, clock.NewFixed(now))
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
