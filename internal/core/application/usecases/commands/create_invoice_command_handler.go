package commands

import (
	"context"
	"errors"
	"fmt"

	"lastmile/internal/core/domain/model/invoice"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

var (
	// ErrUnknownOrder is returned when the order service confirms the billed
	// order does not exist.
	ErrUnknownOrder = errors.New("order does not exist")

	// ErrExistenceCheckFailed is returned when the order service could not be
	// reached or answered with an error. The invoice is not created; the
	// caller may retry.
	ErrExistenceCheckFailed = errors.New("order existence check failed")
)

// CreateInvoiceCommandHandler handles draft invoice creation.
//
// Two gates run before the invoice is written, in this order:
//  1. the order must not be invoiced already (one invoice per order)
//  2. the order service must confirm the order exists
//
// The duplicate check runs first so a duplicate request gets a conflict
// answer even while the order service is down.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	orders     ports.OrderExistenceChecker
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
func NewCreateInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory,
	orders ports.OrderExistenceChecker,
) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
	}
}

// Handle processes the invoice creation command.
// Returns errs.ErrObjectAlreadyExists for an already invoiced order,
// ErrUnknownOrder when the order is confirmed absent, and
// ErrExistenceCheckFailed when the order service cannot answer.
func (h CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) error {
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

	_, err := invoiceRepo.GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("orderId", cmd.OrderID())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	exists, err := h.orders.OrderExists(ctx, cmd.OrderID())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExistenceCheckFailed, err)
	}
	if !exists {
		return ErrUnknownOrder
	}

	aggregate, err := invoice.NewInvoice(
		cmd.InvoiceID(), cmd.OrderID(), cmd.CustomerTaxID(),
		cmd.Subtotal(), cmd.TaxAmount(), cmd.Total(),
	)
	if err != nil {
		return err
	}

	if err = invoiceRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
