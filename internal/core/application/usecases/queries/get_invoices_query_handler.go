package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetInvoicesQueryHandler retrieves invoice read models from the database.
type GetInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoicesQueryHandler creates a handler for invoice list queries.
func NewGetInvoicesQueryHandler(db *gorm.DB) GetInvoicesQueryHandler {
	return GetInvoicesQueryHandler{db: db}
}

// Handle executes the query and returns all invoices, newest first.
func (h GetInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetInvoicesQuery,
) ([]InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]InvoiceResponse, 0)
	for rows.Next() {
		resp, scanErr := scanInvoice(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		invoices = append(invoices, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
