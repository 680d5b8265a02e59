package jobs

import (
	"context"
	"log/slog"

	"lastmile/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DraftInvoiceWatchJob periodically reports invoices that were drafted but
// never issued. Drafts are expected to be issued shortly after creation, so
// a growing backlog points at a stuck billing flow.
type DraftInvoiceWatchJob struct {
	invoices ports.InvoiceRepository
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDraftInvoiceWatchJob creates a job that watches for lingering draft
// invoices.
func NewDraftInvoiceWatchJob(invoices ports.InvoiceRepository, logger *slog.Logger) *DraftInvoiceWatchJob {
	return &DraftInvoiceWatchJob{
		invoices: invoices,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "draft_invoice_watch_job"),
	}
}

// Start begins the watch job, running once a minute.
func (j *DraftInvoiceWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		drafts, err := j.invoices.GetAllInDraftStatus(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft invoice watch failed", "error", err)
			return
		}

		if len(drafts) == 0 {
			return
		}

		ids := make([]string, 0, len(drafts))
		for _, inv := range drafts {
			ids = append(ids, inv.ID().String())
		}
		j.logger.WarnContext(ctx, "Invoices still in draft status", "count", len(drafts), "ids", ids)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft invoice watch job started (running every minute)")
	return nil
}

// Stop stops the watch job.
func (j *DraftInvoiceWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft invoice watch job stopped")
}
