package jobs

import (
	"fmt"
	"log/slog"

	"parcelshift/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs behind a single
// start/stop interface.
type JobManager struct {
	riderAssignmentJob *RiderAssignmentJob
}

// NewJobManager creates a job manager wired to the given command handlers.
func NewJobManager(
	autoAssignHandler commands.AutoAssignRiderCommandHandler,
	assignmentSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		riderAssignmentJob: NewRiderAssignmentJob(autoAssignHandler, assignmentSchedule, logger),
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.riderAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start rider assignment job: %w", err)
	}
	return nil
}

// StopAll stops every scheduled job.
func (jm *JobManager) StopAll() {
	jm.riderAssignmentJob.Stop()
}
