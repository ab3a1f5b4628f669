package order_test

import (
	"testing"
	"time"

	"sourcing/internal/core/domain/model/kernel"
	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func validTerms(t *testing.T) order.Terms {
	t.Helper()

	price, err := kernel.NewMoney(decimal.RequireFromString("4.75"))
	require.NoError(t, err)

	return order.Terms{
		PieceCount:     500,
		UnitPrice:      price,
		LeadTime:       " 30 days ",
		DesignImageURL: "https://res.cloudinary.com/demo/image/upload/v1/quotes/front.png",
	}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(), kernel.NewUUID(), validTerms(t), now)
	require.NoError(t, err)
	return o
}

// restoreOrder builds an order in the given overall status with the listed steps Completed.
func restoreOrder(t *testing.T, status order.Status, completed ...order.StepName) *order.Order {
	t.Helper()

	steps := order.NewSteps()
	for _, name := range completed {
		var err error
		steps, err = steps.With(name, order.StepCompleted)
		require.NoError(t, err)
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), order.NewNumber(), kernel.NewUUID(), status, validTerms(t), steps, now, now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a confirmed order with all steps Not Started", func(t *testing.T) {
		id := kernel.NewUUID()
		quoteID := kernel.NewUUID()

		o, err := order.NewOrder(id, order.NewNumber(), quoteID, validTerms(t), now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.QuoteID().IsEqual(quoteID))
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, 0, o.Steps().CompletedCount())
		assert.Equal(t, 500, o.Terms().PieceCount)
		assert.Equal(t, "30 days", o.Terms().LeadTime)
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var id kernel.UUID
		var number order.Number
		terms := order.Terms{PieceCount: -1}

		o, err := order.NewOrder(id, number, kernel.NewUUID(), terms, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "pieceCount")
		assert.Contains(t, err.Error(), "unitPrice")
	})

	t.Run("should reject a zero value order", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

		var nilOrder *order.Order
		assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep the stored status without re-deriving it", func(t *testing.T) {
		o := restoreOrder(t, order.Delivered)

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), order.NewNumber(), kernel.NewUUID(), order.Unknown, validTerms(t), order.NewSteps(), now, now,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AdvanceStep(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("should move a fresh order to In Production when one step completes", func(t *testing.T) {
		o := newOrder(t)

		change, err := o.AdvanceStep(order.Production, order.StepCompleted, later)

		require.NoError(t, err)
		status, _ := o.Steps().Get(order.Production)
		assert.Equal(t, order.StepCompleted, status)
		assert.Equal(t, order.InProduction, o.Status())
		require.NotNil(t, change.OverallStatus)
		assert.Equal(t, order.InProduction, *change.OverallStatus)
		assert.Equal(t, order.Production, change.Step)
		assert.Equal(t, order.StepCompleted, change.StepStatus)
		assert.True(t, change.OrderID.IsEqual(o.ID()))
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should complete the order when the last step completes", func(t *testing.T) {
		names := order.AllStepNames()
		o := restoreOrder(t, order.InProduction, names[:7]...)

		change, err := o.AdvanceStep(order.ConfirmPaymentTerms, order.StepCompleted, later)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, change.OverallStatus)
		assert.Equal(t, order.Completed, *change.OverallStatus)
	})

	t.Run("should keep In Production when a completed step is reverted", func(t *testing.T) {
		o := restoreOrder(t, order.InProduction, order.Production)

		change, err := o.AdvanceStep(order.Production, order.NotStarted, later)

		require.NoError(t, err)
		status, _ := o.Steps().Get(order.Production)
		assert.Equal(t, order.NotStarted, status)
		assert.Equal(t, order.InProduction, o.Status())
		assert.Nil(t, change.OverallStatus)
	})

	t.Run("should derive In Production or Completed for every completed count", func(t *testing.T) {
		names := order.AllStepNames()
		for k := 0; k < order.StepCount; k++ {
			status := order.Confirmed
			if k > 0 {
				status = order.InProduction
			}
			o := restoreOrder(t, status, names[:k]...)

			_, err := o.AdvanceStep(names[k], order.StepCompleted, later)
			require.NoError(t, err)

			want := order.InProduction
			if k+1 == order.StepCount {
				want = order.Completed
			}
			assert.Equal(t, want, o.Status(), "k=%d", k)
		}
	})

	t.Run("should never change the overall status on a non-completed update", func(t *testing.T) {
		names := order.AllStepNames()
		cases := []struct {
			status    order.Status
			completed []order.StepName
		}{
			{order.Confirmed, nil},
			{order.InProduction, names[:3]},
			{order.Completed, names},
			{order.Delivered, names},
		}

		for _, c := range cases {
			for _, target := range []order.StepStatus{order.NotStarted, order.InProgress} {
				for _, name := range names {
					o := restoreOrder(t, c.status, c.completed...)

					change, err := o.AdvanceStep(name, target, later)

					require.NoError(t, err)
					assert.Equal(t, c.status, o.Status())
					assert.Nil(t, change.OverallStatus)
				}
			}
		}
	})

	t.Run("should not touch the order on invalid input", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.AdvanceStep(order.UnknownStep, order.StepCompleted, later)
		assert.ErrorIs(t, err, order.ErrInvalidStep)

		_, err = o.AdvanceStep(order.Production, order.UnknownStepStatus, later)
		assert.ErrorIs(t, err, order.ErrInvalidStepStatus)

		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, 0, o.Steps().CompletedCount())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should allow any status from any status", func(t *testing.T) {
		o := restoreOrder(t, order.Completed, order.AllStepNames()...)

		_, err := o.AdvanceStep(order.Packaging, order.InProgress, later)
		require.NoError(t, err)
		_, err = o.AdvanceStep(order.Packaging, order.NotStarted, later)
		require.NoError(t, err)

		status, _ := o.Steps().Get(order.Packaging)
		assert.Equal(t, order.NotStarted, status)
		assert.Equal(t, order.Completed, o.Status())
	})
}
