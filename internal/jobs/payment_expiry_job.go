package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentExpiryJob cancels pending payments that have been awaiting
// confirmation for longer than the configured window. Runs every minute.
type PaymentExpiryJob struct {
	handler commands.ExpirePaymentsCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentExpiryJob creates a new job for expiring stale pending payments.
// Payments older than the window are cancelled on each run.
func NewPaymentExpiryJob(
	handler commands.ExpirePaymentsCommandHandler,
	window time.Duration,
	logger *slog.Logger,
) *PaymentExpiryJob {
	return &PaymentExpiryJob{
		handler: handler,
		window:  window,
		cron:    cron.New(),
		logger:  logger.With("component", "payment_expiry_job"),
	}
}

// Start begins the payment expiry job to run every minute.
func (j *PaymentExpiryJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.window)

		cmd, err := commands.NewExpirePaymentsCommand(cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment expiry job failed to build command", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending payments", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment expiry job started (running every minute)")
	return nil
}

// Stop stops the payment expiry job.
func (j *PaymentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment expiry job stopped")
}
