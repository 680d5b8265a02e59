package queries

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInvoiceByOrderQueryIsNotConstructed = errors.New(
	"GetInvoiceByOrderQuery must be created via NewGetInvoiceByOrderQuery constructor",
)

// GetInvoiceByOrderQuery retrieves the invoice billing a given order.
type GetInvoiceByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceByOrderQuery creates a query for the invoice of one order.
func NewGetInvoiceByOrderQuery(orderID kernel.UUID) (GetInvoiceByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetInvoiceByOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	return GetInvoiceByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceByOrderQueryIsNotConstructed)
}

// OrderID returns the id of the billed order.
func (q GetInvoiceByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// InvoiceResponse is the read model of an invoice.
type InvoiceResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	CustomerTaxID string
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	Status        string
	IssuedAt      *time.Time
	CreatedAt     time.Time
}
