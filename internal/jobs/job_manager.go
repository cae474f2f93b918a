package jobs

import (
	"fmt"
	"log/slog"

	"cogs/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	recalculationJob *RecalculationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	recalculateHandler commands.RecalculateOpenPurchaseOrdersCommandHandler,
	recalculationSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		recalculationJob: NewRecalculationJob(recalculateHandler, recalculationSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.recalculationJob.Start(); err != nil {
		return fmt.Errorf("failed to start recalculation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.recalculationJob.Stop()
}
