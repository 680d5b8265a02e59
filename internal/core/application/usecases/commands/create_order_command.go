package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/model/tariff"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order.
// It carries the route, the package contents, and the vehicle class the fare
// will be priced against. Both addresses must include coordinates: without
// them no distance, and therefore no fare, can be computed.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), customerID, pickup, delivery, items, tariff.Motorcycle)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	pickupAddress   order.Address
	deliveryAddress order.Address
	items           []*order.Item
	vehicleType     tariff.VehicleType

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates identifiers, both addresses (coordinates required), the item list,
// and the vehicle class.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	pickupAddress order.Address,
	deliveryAddress order.Address,
	items []*order.Item,
	vehicleType tariff.VehicleType,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAddresses(pickupAddress, deliveryAddress),
		cmd.setItems(items),
		cmd.setVehicleType(vehicleType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the id of the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns the pickup address with coordinates.
func (c CreateOrderCommand) PickupAddress() order.Address {
	return c.pickupAddress
}

// DeliveryAddress returns the delivery address with coordinates.
func (c CreateOrderCommand) DeliveryAddress() order.Address {
	return c.deliveryAddress
}

// Items returns the package contents.
func (c CreateOrderCommand) Items() []*order.Item {
	return c.items
}

// VehicleType returns the vehicle class the fare is priced against.
func (c CreateOrderCommand) VehicleType() tariff.VehicleType {
	return c.vehicleType
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setAddresses(pickupAddress, deliveryAddress order.Address) error {
	if err := pickupAddress.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickupAddress", err)
	}
	if pickupAddress.Point() == nil {
		return errs.NewValueIsRequiredError("pickupAddress coordinates")
	}
	if err := deliveryAddress.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	if deliveryAddress.Point() == nil {
		return errs.NewValueIsRequiredError("deliveryAddress coordinates")
	}

	c.pickupAddress = pickupAddress
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setItems(items []*order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setVehicleType(vehicleType tariff.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}
