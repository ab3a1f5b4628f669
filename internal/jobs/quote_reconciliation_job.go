package jobs

import (
	"context"
	"log/slog"
	"time"

	"sourcing/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultReconcileSchedule runs at second zero of every minute.
	DefaultReconcileSchedule = "0 * * * * *"

	reconcileBatchSize = 100
	reconcileTimeout   = 45 * time.Second
)

type reconcileHandler interface {
	Handle(ctx context.Context, command commands.ReconcileAcceptedQuotesCommand) (int, error)
}

// QuoteReconciliationJob periodically creates orders for accepted quotes that
// have none.
type QuoteReconciliationJob struct {
	handler  reconcileHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewQuoteReconciliationJob uses DefaultReconcileSchedule when schedule is empty.
func NewQuoteReconciliationJob(handler reconcileHandler, schedule string, logger *slog.Logger) *QuoteReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &QuoteReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "quote_reconciliation_job"),
	}
}

// Start registers the job and starts its scheduler.
func (j *QuoteReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running reconciliation to finish.
func (j *QuoteReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Quote reconciliation job stopped")
}

func (j *QuoteReconciliationJob) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	cmd, err := commands.NewReconcileAcceptedQuotesCommand(reconcileBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Quote reconciliation job misconfigured", "error", err)
		return
	}

	created, err := j.handler.Handle(ctx, cmd)
	if created > 0 {
		j.logger.InfoContext(ctx, "Created orders for accepted quotes", "created", created)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Quote reconciliation job failed", "error", err)
	}
}
