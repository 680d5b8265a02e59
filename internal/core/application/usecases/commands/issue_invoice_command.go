package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var ErrIssueInvoiceCommandIsNotConstructed = errors.New(
	"IssueInvoiceCommand must be created via NewIssueInvoiceCommand constructor",
)

// IssueInvoiceCommand represents a request to issue a draft invoice, making
// it final and stamping its issue time.
type IssueInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIssueInvoiceCommand creates a command to issue the given invoice.
func NewIssueInvoiceCommand(invoiceID kernel.UUID) (IssueInvoiceCommand, error) {
	cmd := IssueInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInvoiceID(invoiceID); err != nil {
		return IssueInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrIssueInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the id of the invoice to issue.
func (c IssueInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

func (c *IssueInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}
