package ports

import (
	"context"

	"lastmile/internal/core/domain/model/invoice"
	"lastmile/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
// The storage layer enforces at most one invoice per order.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	// Returns errs.ErrObjectAlreadyExists when the order is already invoiced.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such invoice exists.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByOrderID retrieves the invoice billing the given order.
	// Returns errs.ErrObjectNotFound when the order has no invoice.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error)

	// GetAllInDraftStatus retrieves every invoice still in Draft status.
	// Used by the draft watch job to surface invoices that were never issued.
	GetAllInDraftStatus(ctx context.Context) ([]*invoice.Invoice, error)
}
