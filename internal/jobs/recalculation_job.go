package jobs

import (
	"context"
	"log/slog"

	"cogs/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RecalculationJob periodically reruns the cost allocation of every open
// purchase order so stored costs never drift from their inputs.
type RecalculationJob struct {
	handler  commands.RecalculateOpenPurchaseOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRecalculationJob creates the job. schedule is a standard five field cron
// expression such as "0 3 * * *".
func NewRecalculationJob(
	handler commands.RecalculateOpenPurchaseOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *RecalculationJob {
	return &RecalculationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "recalculation_job"),
	}
}

// Start schedules the job. An invalid schedule is reported and nothing runs.
func (j *RecalculationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Recalculation job started", "schedule", j.schedule)
	return nil
}

// Run recalculates all open orders once. Failures of single orders are
// logged and do not stop the others.
func (j *RecalculationJob) Run(ctx context.Context) {
	recalculated, err := j.handler.Handle(ctx, commands.NewRecalculateOpenPurchaseOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Recalculation job failed", "recalculated", recalculated, "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Recalculation job finished", "recalculated", recalculated)
}

// Stop stops the schedule and waits for a running pass to finish.
func (j *RecalculationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Recalculation job stopped")
}
