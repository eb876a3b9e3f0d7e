package jobs

import (
	"context"
	"log/slog"

	"deliverytrack/internal/core/application/usecases/queries"
	"deliverytrack/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DelayScanJob periodically re-derives the dashboard summary to keep the
// delayed-orders gauge current and to surface orders past their expected
// delivery window in the logs.
type DelayScanJob struct {
	shop     string
	schedule string
	handler  queries.GetDashboardSummaryQueryHandler
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDelayScanJob creates a job that scans for delayed orders on the given
// cron schedule (six-field spec with seconds).
func NewDelayScanJob(
	shop string,
	schedule string,
	handler queries.GetDashboardSummaryQueryHandler,
	logger *slog.Logger,
) *DelayScanJob {
	return &DelayScanJob{
		shop:     shop,
		schedule: schedule,
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delay_scan_job"),
	}
}

// Start begins the delay scan on the configured schedule.
func (j *DelayScanJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetDashboardSummaryQuery(j.shop, 0)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Delay scan query construction failed", "error", queryErr)
			return
		}

		summary, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delay scan failed", "error", handleErr)
			return
		}

		metrics.DelayedOrders.Set(float64(summary.DelayedCount))

		if summary.DelayedCount > 0 {
			j.logger.WarnContext(ctx, "Orders past expected delivery window",
				"delayed", summary.DelayedCount)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delay scan job started", "schedule", j.schedule)
	return nil
}

// Stop stops the delay scan job.
func (j *DelayScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delay scan job stopped")
}
