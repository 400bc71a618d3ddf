// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(jobs.NewCartJanitorJob(cartStore, logger))
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// CartJanitorJob runs every minute and removes session carts whose TTL has
// passed. Expiry is also checked lazily on every cart read, so the janitor
// exists purely to reclaim memory from abandoned sessions.
package jobs
