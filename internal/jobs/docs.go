// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the payment ledger.
//
// # Available Jobs
//
// 1. PaymentTimeoutJob - Runs every minute to fail card and online payment
// attempts whose provider callback never arrived, unblocking their orders
// for a new attempt.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(failStalePaymentsHandler, maxAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The timeout job logs every failure; a sweep that finds nothing stale is
// not an error.
package jobs
