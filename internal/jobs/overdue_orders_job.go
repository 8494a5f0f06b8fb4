package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob periodically reports orders whose delivery estimate has
// passed without the order reaching a terminal status. The job only observes;
// it never mutates orders.
type OverdueOrdersJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrdersJob creates a new job monitoring overdue orders.
// Uses GetOverdueOrdersQueryHandler to scan the order store every minute.
func NewOverdueOrdersJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the overdue orders job to run every minute.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query := queries.NewGetOverdueOrdersQuery()

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", handleErr)
			return
		}

		for _, o := range overdue {
			j.logger.WarnContext(ctx, "Order is past its delivery estimate",
				"order_id", o.ID.String(),
				"user_id", o.UserID.String(),
				"restaurant_id", o.RestaurantID.String(),
				"status", o.Status.String(),
				"estimated_delivery_time", o.EstimatedDeliveryTime)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every minute)")
	return nil
}

// Stop stops the overdue orders job.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
