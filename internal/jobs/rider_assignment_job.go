package jobs

import (
	"context"
	"errors"
	"log/slog"

	"parcelshift/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RiderAssignmentJob periodically matches the oldest paid, unassigned parcel
// with an idle approved rider from the sender's district.
type RiderAssignmentJob struct {
	handler  commands.AutoAssignRiderCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRiderAssignmentJob creates the assignment job. The schedule is a
// six-field cron expression with seconds resolution.
func NewRiderAssignmentJob(
	handler commands.AutoAssignRiderCommandHandler,
	schedule string,
	logger *slog.Logger,
) *RiderAssignmentJob {
	return &RiderAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "rider_assignment_job"),
	}
}

// Start schedules the job.
func (j *RiderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAutoAssignRiderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue and a district without idle riders are routine,
			// not failures.
			if !errors.Is(err, commands.ErrNoParcelToAssign) && !errors.Is(err, commands.ErrNoFreeRidersFound) {
				j.logger.ErrorContext(ctx, "Rider assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job. Already running invocations finish on their own.
func (j *RiderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rider assignment job stopped")
}
