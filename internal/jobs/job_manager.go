package jobs

import (
	"fmt"
	"log/slog"
)

// Config holds the schedules of the scheduled jobs.
type Config struct {
	// ReconcileSchedule is a six-field cron expression; empty means every minute.
	ReconcileSchedule string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	quoteReconciliationJob *QuoteReconciliationJob
}

func NewJobManager(reconcile reconcileHandler, config Config, logger *slog.Logger) *JobManager {
	return &JobManager{
		quoteReconciliationJob: NewQuoteReconciliationJob(reconcile, config.ReconcileSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.quoteReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start quote reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quoteReconciliationJob.Stop()
}
