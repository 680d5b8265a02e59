package jobs

import (
	"fmt"
	"log/slog"

	"lastmile/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	draftInvoiceWatchJob *DraftInvoiceWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(invoices ports.InvoiceRepository, logger *slog.Logger) *JobManager {
	return &JobManager{
		draftInvoiceWatchJob: NewDraftInvoiceWatchJob(invoices, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.draftInvoiceWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start draft invoice watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.draftInvoiceWatchJob.Stop()
}
