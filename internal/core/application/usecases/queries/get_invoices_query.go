package queries

import (
	"errors"

	"lastmile/internal/pkg/guard"
)

var ErrGetInvoicesQueryIsNotConstructed = errors.New(
	"GetInvoicesQuery must be created via NewGetInvoicesQuery constructor",
)

// GetInvoicesQuery retrieves every invoice, newest first.
type GetInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInvoicesQuery creates a parameterless query for all invoices.
func NewGetInvoicesQuery() GetInvoicesQuery {
	return GetInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoicesQueryIsNotConstructed)
}
