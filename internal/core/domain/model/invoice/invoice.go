package invoice

import (
	"errors"
	"fmt"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxCustomerTaxIDLength bounds the fiscal identifier length.
const MaxCustomerTaxIDLength = 20

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through the NewInvoice or RestoreInvoice factory methods.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice is the aggregate root for billing a delivery order.
//
// Invoice follows these invariants:
//   - Must reference an existing order and carry the customer's tax id
//   - Amounts are non-negative and total = subtotal + taxAmount
//   - issuedAt is stamped exactly once, when the invoice is issued
//   - At most one invoice per order (enforced by the persistence layer)
//   - Can only be created through NewInvoice or RestoreInvoice
type Invoice struct {
	id            kernel.UUID
	orderID       kernel.UUID
	customerTaxID string

	subtotal  decimal.Decimal
	taxAmount decimal.Decimal
	total     decimal.Decimal

	status   Status
	issuedAt *time.Time

	// xmlData holds the signed fiscal document once electronic invoicing
	// is integrated. Always nil for now.
	xmlData *string

	isConstructed bool
}

// NewInvoice creates an Invoice in Draft status with no issue timestamp.
func NewInvoice(
	id kernel.UUID,
	orderID kernel.UUID,
	customerTaxID string,
	subtotal decimal.Decimal,
	taxAmount decimal.Decimal,
	total decimal.Decimal,
) (*Invoice, error) {
	return RestoreInvoice(id, orderID, customerTaxID, subtotal, taxAmount, total, Draft, nil, nil)
}

// RestoreInvoice reconstructs an Invoice from persistence. All invariants are
// re-checked so corrupted rows surface as errors instead of invalid aggregates.
func RestoreInvoice(
	id kernel.UUID,
	orderID kernel.UUID,
	customerTaxID string,
	subtotal decimal.Decimal,
	taxAmount decimal.Decimal,
	total decimal.Decimal,
	status Status,
	issuedAt *time.Time,
	xmlData *string,
) (*Invoice, error) {
	inv := &Invoice{
		issuedAt:      issuedAt,
		xmlData:       xmlData,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOrderID(orderID),
		inv.setCustomerTaxID(customerTaxID),
		inv.setAmounts(subtotal, taxAmount, total),
		inv.setStatus(status),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate ensures the Invoice was created through a factory method.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by their unique identifiers.
func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// OrderID returns the id of the billed order.
func (i *Invoice) OrderID() kernel.UUID {
	return i.orderID
}

// CustomerTaxID returns the customer's fiscal identifier.
func (i *Invoice) CustomerTaxID() string {
	return i.customerTaxID
}

// Subtotal returns the amount before tax.
func (i *Invoice) Subtotal() decimal.Decimal {
	return i.subtotal
}

// TaxAmount returns the tax portion of the invoice.
func (i *Invoice) TaxAmount() decimal.Decimal {
	return i.taxAmount
}

// Total returns the total amount: subtotal plus tax.
func (i *Invoice) Total() decimal.Decimal {
	return i.total
}

// Status returns the current lifecycle status.
func (i *Invoice) Status() Status {
	return i.status
}

// IssuedAt returns when the invoice was issued, or nil for drafts.
func (i *Invoice) IssuedAt() *time.Time {
	return i.issuedAt
}

// XMLData returns the signed fiscal document, or nil while electronic
// invoicing is not integrated.
func (i *Invoice) XMLData() *string {
	return i.xmlData
}

// Issue transitions the invoice from Draft to Issued and stamps issuedAt
// with the supplied time. The timestamp is written exactly once; issuing a
// non-draft invoice is an invalid state.
func (i *Invoice) Issue(now time.Time) error {
	newStatus, err := i.status.Issue()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.issuedAt = &now
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	i.orderID = orderID
	return nil
}

func (i *Invoice) setCustomerTaxID(customerTaxID string) error {
	if customerTaxID == "" {
		return errs.NewValueIsRequiredError("customerTaxId")
	}
	if len(customerTaxID) > MaxCustomerTaxIDLength {
		return errs.NewValueIsInvalidErrorWithCause("customerTaxId",
			fmt.Errorf("length %d exceeds %d", len(customerTaxID), MaxCustomerTaxIDLength))
	}
	i.customerTaxID = customerTaxID
	return nil
}

func (i *Invoice) setAmounts(subtotal, taxAmount, total decimal.Decimal) error {
	if subtotal.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%s is negative", subtotal))
	}
	if taxAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("taxAmount",
			fmt.Errorf("%s is negative", taxAmount))
	}
	if !total.Equal(subtotal.Add(taxAmount)) {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s does not equal subtotal %s + taxAmount %s", total, subtotal, taxAmount))
	}

	i.subtotal = subtotal
	i.taxAmount = taxAmount
	i.total = total
	return nil
}

func (i *Invoice) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
