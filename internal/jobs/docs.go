// Package jobs provides scheduled background tasks for the delivery and
// billing services.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(invoiceRepository, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// DraftInvoiceWatchJob runs once a minute and logs invoices that are still
// in DRAFT status. It only observes; issuing remains an explicit operation.
package jobs
