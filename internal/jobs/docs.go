// Package jobs provides scheduled background tasks for the purchase order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RecalculationJob - reruns the cost allocation of every NEW purchase order
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(recalculateHandler, "0 3 * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are standard five field cron expressions. The default runs the
// recalculation daily at 03:00 server time.
//
// # Error Handling
//
// A failing order is logged together with the number of orders that were
// recalculated; the next run tries it again.
package jobs
