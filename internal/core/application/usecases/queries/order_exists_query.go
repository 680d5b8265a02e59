package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var ErrOrderExistsQueryIsNotConstructed = errors.New(
	"OrderExistsQuery must be created via NewOrderExistsQuery constructor",
)

// OrderExistsQuery answers whether an order with the given id exists.
// Served to the billing service so it can gate invoice creation.
type OrderExistsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrderExistsQuery creates an existence query for one order id.
func NewOrderExistsQuery(orderID kernel.UUID) (OrderExistsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return OrderExistsQuery{}, err
	}

	return OrderExistsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrderExistsQuery) Validate() error {
	return q.guard.Validate(ErrOrderExistsQueryIsNotConstructed)
}

// OrderID returns the id being checked.
func (q OrderExistsQuery) OrderID() kernel.UUID {
	return q.orderID
}
