package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"sourcing/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReconcileHandler struct {
	mock.Mock
}

func (m *mockReconcileHandler) Handle(ctx context.Context, command commands.ReconcileAcceptedQuotesCommand) (int, error) {
	args := m.Called(ctx, command)
	return args.Int(0), args.Error(1)
}

var discard = slog.New(slog.DiscardHandler)

func TestQuoteReconciliationJob_Run(t *testing.T) {
	t.Run("should reconcile one batch with a deadline", func(t *testing.T) {
		handler := new(mockReconcileHandler)
		handler.On("Handle", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), mock.MatchedBy(func(cmd commands.ReconcileAcceptedQuotesCommand) bool {
			return cmd.Validate() == nil && cmd.BatchSize() == reconcileBatchSize
		})).Return(2, nil).Once()

		NewQuoteReconciliationJob(handler, "", discard).run(context.Background())

		handler.AssertExpectations(t)
	})

	t.Run("should survive handler failures", func(t *testing.T) {
		handler := new(mockReconcileHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(1, errors.New("quote 42: store unavailable")).Once()

		assert.NotPanics(t, func() {
			NewQuoteReconciliationJob(handler, "", discard).run(context.Background())
		})
		handler.AssertExpectations(t)
	})
}

func TestQuoteReconciliationJob_Schedule(t *testing.T) {
	t.Run("should default to every minute", func(t *testing.T) {
		job := NewQuoteReconciliationJob(new(mockReconcileHandler), "", discard)
		assert.Equal(t, DefaultReconcileSchedule, job.schedule)
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := NewQuoteReconciliationJob(new(mockReconcileHandler), "every minute", discard)
		require.Error(t, job.Start())
	})

	t.Run("should start and stop", func(t *testing.T) {
		manager := NewJobManager(new(mockReconcileHandler), Config{ReconcileSchedule: "0 0 0 1 1 *"}, discard)
		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("should wrap start failures", func(t *testing.T) {
		manager := NewJobManager(new(mockReconcileHandler), Config{ReconcileSchedule: "bad"}, discard)
		err := manager.StartAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quote reconciliation job")
	})
}
