// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return flat response models;
// they never load aggregates or run domain logic.
package queries

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full read model of a single order, including
// its addresses, items, pricing, and assignment.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// AddressResponse is the read model of a stored address.
type AddressResponse struct {
	Street       string   `json:"street"`
	City         string   `json:"city"`
	Instructions string   `json:"instructions,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// ItemResponse is the read model of an order item.
type ItemResponse struct {
	ID            kernel.UUID
	Description   string
	Quantity      int
	WeightKg      decimal.Decimal
	DeclaredValue *decimal.Decimal
	HandlingFee   *decimal.Decimal
}

// GetOrderQueryResponse is the full read model of an order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	DriverID        *kernel.UUID
	VehicleID       *string
	PickupAddress   AddressResponse
	DeliveryAddress AddressResponse
	Items           []ItemResponse
	DistanceKm      decimal.Decimal
	TripFee         decimal.Decimal
	ServiceFee      decimal.Decimal
	Total           decimal.Decimal
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
