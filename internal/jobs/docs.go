// Package jobs provides the scheduled background tasks of the parcel service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with seconds
// resolution, and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(autoAssignHandler, "*/5 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// RiderAssignmentJob picks the oldest paid, unassigned parcel and claims an
// idle approved rider from the sender's district for it. An empty queue or a
// district without free riders is a routine outcome and is not logged; every
// other error is.
package jobs
