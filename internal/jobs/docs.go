// Package jobs provides scheduled background tasks of the sourcing service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field, so a
// schedule has six fields.
//
// # Available Jobs
//
// 1. QuoteReconciliationJob - creates the missing orders of accepted quotes
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, jobs.Config{ReconcileSchedule: "0 * * * * *"}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A run that is still going when the next one is due is skipped.
package jobs
