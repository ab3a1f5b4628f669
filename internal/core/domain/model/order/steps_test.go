package order_test

import (
	"testing"

	"sourcing/internal/core/domain/model/order"
	"sourcing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	t.Run("should start with every step Not Started", func(t *testing.T) {
		steps := order.NewSteps()

		for name, status := range steps.All() {
			assert.Equal(t, order.NotStarted, status, name.String())
		}
		assert.Equal(t, 0, steps.CompletedCount())
	})

	t.Run("should return a modified copy from With", func(t *testing.T) {
		original := order.NewSteps()

		merged, err := original.With(order.Production, order.StepCompleted)
		require.NoError(t, err)

		before, _ := original.Get(order.Production)
		after, _ := merged.Get(order.Production)
		assert.Equal(t, order.NotStarted, before)
		assert.Equal(t, order.StepCompleted, after)
		assert.Equal(t, 1, merged.CompletedCount())
	})

	t.Run("should reject unknown step or status in With", func(t *testing.T) {
		_, err := order.NewSteps().With(order.UnknownStep, order.StepCompleted)
		assert.ErrorIs(t, err, order.ErrInvalidStep)

		_, err = order.NewSteps().With(order.Production, order.UnknownStepStatus)
		assert.ErrorIs(t, err, order.ErrInvalidStepStatus)
	})

	t.Run("should restore a complete ledger", func(t *testing.T) {
		m := order.NewSteps().Map()
		m[order.Packaging] = order.InProgress

		steps, err := order.RestoreSteps(m)

		require.NoError(t, err)
		status, _ := steps.Get(order.Packaging)
		assert.Equal(t, order.InProgress, status)
	})

	t.Run("should refuse to restore a ledger with missing steps", func(t *testing.T) {
		m := order.NewSteps().Map()
		delete(m, order.Packaging)

		_, err := order.RestoreSteps(m)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should refuse to restore a ledger with an invalid status", func(t *testing.T) {
		m := order.NewSteps().Map()
		m[order.Packaging] = order.StepStatus(42)

		_, err := order.RestoreSteps(m)

		assert.ErrorIs(t, err, order.ErrInvalidStepStatus)
	})
}

func TestParseSteps(t *testing.T) {
	t.Run("should round trip through Strings", func(t *testing.T) {
		steps, err := order.NewSteps().With(order.Packaging, order.InProgress)
		require.NoError(t, err)

		raw := steps.Strings()
		assert.Equal(t, "In Progress", raw["packaging"])
		assert.Equal(t, "Not Started", raw["sampleConfirmation"])
		assert.Len(t, raw, order.StepCount)

		parsed, err := order.ParseSteps(raw)
		require.NoError(t, err)
		assert.Equal(t, steps, parsed)
	})

	t.Run("should reject unknown step names", func(t *testing.T) {
		raw := order.NewSteps().Strings()
		raw["embroidery"] = "Completed"
		delete(raw, "production")

		_, err := order.ParseSteps(raw)
		assert.ErrorIs(t, err, order.ErrInvalidStep)
	})

	t.Run("should reject an incomplete ledger", func(t *testing.T) {
		raw := order.NewSteps().Strings()
		delete(raw, "production")

		_, err := order.ParseSteps(raw)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
