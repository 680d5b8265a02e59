package commands

import (
	"errors"
	"fmt"

	"lastmile/internal/core/domain/model/invoice"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand represents a request to open a draft invoice for a
// delivery order. The amounts are supplied by the caller; the handler checks
// the order exists before accepting them.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID     kernel.UUID
	orderID       kernel.UUID
	customerTaxID string
	subtotal      decimal.Decimal
	taxAmount     decimal.Decimal
	total         decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to open a draft invoice.
// All amounts must be non-negative and the total must equal subtotal plus
// tax; an inconsistent total is rejected rather than recomputed.
func NewCreateInvoiceCommand(
	invoiceID kernel.UUID,
	orderID kernel.UUID,
	customerTaxID string,
	subtotal decimal.Decimal,
	taxAmount decimal.Decimal,
	total decimal.Decimal,
) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setOrderID(orderID),
		cmd.setCustomerTaxID(customerTaxID),
		cmd.setAmounts(subtotal, taxAmount, total),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the unique identifier for the new invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// OrderID returns the id of the order being billed.
func (c CreateInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerTaxID returns the customer's fiscal identifier.
func (c CreateInvoiceCommand) CustomerTaxID() string {
	return c.customerTaxID
}

// Subtotal returns the amount before tax.
func (c CreateInvoiceCommand) Subtotal() decimal.Decimal {
	return c.subtotal
}

// TaxAmount returns the tax portion.
func (c CreateInvoiceCommand) TaxAmount() decimal.Decimal {
	return c.taxAmount
}

// Total returns the invoice total supplied by the caller.
func (c CreateInvoiceCommand) Total() decimal.Decimal {
	return c.total
}

func (c *CreateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *CreateInvoiceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CreateInvoiceCommand) setCustomerTaxID(customerTaxID string) error {
	if customerTaxID == "" {
		return errs.NewValueIsRequiredError("customerTaxId")
	}
	if len(customerTaxID) > invoice.MaxCustomerTaxIDLength {
		return errs.NewValueIsInvalidErrorWithCause("customerTaxId",
			fmt.Errorf("length %d exceeds %d", len(customerTaxID), invoice.MaxCustomerTaxIDLength))
	}

	c.customerTaxID = customerTaxID
	return nil
}

func (c *CreateInvoiceCommand) setAmounts(subtotal, taxAmount, total decimal.Decimal) error {
	if subtotal.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%s is negative", subtotal))
	}
	if taxAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("taxAmount",
			fmt.Errorf("%s is negative", taxAmount))
	}
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s is negative", total))
	}
	if !total.Equal(subtotal.Add(taxAmount)) {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s does not equal subtotal %s plus tax %s", total, subtotal, taxAmount))
	}

	c.subtotal = subtotal
	c.taxAmount = taxAmount
	c.total = total
	return nil
}
