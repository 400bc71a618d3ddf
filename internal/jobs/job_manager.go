package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cartJanitorJob *CartJanitorJob
}

// NewJobManager creates a job manager over the application's background jobs.
func NewJobManager(cartJanitorJob *CartJanitorJob) *JobManager {
	return &JobManager{
		cartJanitorJob: cartJanitorJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cartJanitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart janitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartJanitorJob.Stop()
}
