package queries

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves a summary of every order, newest first.
// Used by back-office tooling; customer-facing reads go through
// GetOrdersByCustomerQuery.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a parameterless query for all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderSummaryResponse is the list read model of an order: identifiers,
// status, and the total, without addresses or items.
type OrderSummaryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     string
	DistanceKm decimal.Decimal
	Total      decimal.Decimal
	CreatedAt  time.Time
}
