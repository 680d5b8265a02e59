package commands

import (
	"context"
	"time"
)

// IssueInvoiceCommandHandler handles invoice issuance.
// The aggregate enforces the draft-only rule and stamps the issue time
// exactly once.
type IssueInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	now        func() time.Time
}

// NewIssueInvoiceCommandHandler creates a handler for invoice issuance.
// The clock is injected so tests can pin the issue timestamp.
func NewIssueInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory,
	now func() time.Time,
) IssueInvoiceCommandHandler {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return IssueInvoiceCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the issuance command. Returns errs.ErrObjectNotFound when
// the invoice does not exist and errs.ErrInvalidState when it is already
// issued.
func (h IssueInvoiceCommandHandler) Handle(ctx context.Context, cmd IssueInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()

	aggregate, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = aggregate.Issue(h.now()); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
