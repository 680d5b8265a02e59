package queries

import (
	"context"
	"database/sql"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInvoiceByOrderQueryHandler retrieves the invoice read model for an order.
type GetInvoiceByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceByOrderQueryHandler creates a handler for invoice-by-order
// lookups.
func NewGetInvoiceByOrderQueryHandler(db *gorm.DB) GetInvoiceByOrderQueryHandler {
	return GetInvoiceByOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when the order
// has no invoice.
func (h GetInvoiceByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceByOrderQuery,
) (InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			customer_tax_id,
			subtotal,
			tax_amount,
			total_amount,
			status,
			issued_at,
			created_at
		FROM invoices
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return InvoiceResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return InvoiceResponse{}, err
		}
		return InvoiceResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	resp, err := scanInvoice(rows)
	if err != nil {
		return InvoiceResponse{}, err
	}

	return resp, nil
}

// scanInvoice converts the current invoice row into a response model. The
// column order matches the SELECT lists of both invoice query handlers.
func scanInvoice(rows *sql.Rows) (InvoiceResponse, error) {
	var (
		resp    InvoiceResponse
		id      uuid.UUID
		orderID uuid.UUID
	)

	err := rows.Scan(
		&id,
		&orderID,
		&resp.CustomerTaxID,
		&resp.Subtotal,
		&resp.TaxAmount,
		&resp.Total,
		&resp.Status,
		&resp.IssuedAt,
		&resp.CreatedAt,
	)
	if err != nil {
		return InvoiceResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return InvoiceResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return InvoiceResponse{}, err
	}

	return resp, nil
}
