package order

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a delivery order. It owns its items
// exclusively and manages the lifecycle from creation through delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers
//   - Must have constructed pickup and delivery addresses
//   - Must have at least one item
//   - Carries a consistent Pricing (total = tripFee + serviceFee)
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	// driverID and vehicleID are nil until assignment.
	driverID  *kernel.UUID
	vehicleID *string

	pickupAddress   Address
	deliveryAddress Address
	items           []*Item
	pricing         Pricing
	status          Status

	isConstructed bool
}

// NewOrder creates an Order in Created status. Pricing must already be
// computed: the status model assigns CREATED only after a successful fare
// calculation, so an unpriced order cannot exist.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupAddress Address,
	deliveryAddress Address,
	items []*Item,
	pricing Pricing,
) (*Order, error) {
	return RestoreOrder(id, customerID, nil, nil, pickupAddress, deliveryAddress, items, pricing, Created)
}

// RestoreOrder reconstructs an Order from persistence, including driver and
// vehicle assignment and the persisted status. All invariants are re-checked
// so corrupted rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	vehicleID *string,
	pickupAddress Address,
	deliveryAddress Address,
	items []*Item,
	pricing Pricing,
	status Status,
) (*Order, error) {
	o := &Order{
		vehicleID:     vehicleID,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDriverID(driverID),
		o.setAddresses(pickupAddress, deliveryAddress),
		o.setItems(items),
		o.setPricing(pricing),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a factory method.
// Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DriverID returns the assigned driver's id, or nil if unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// VehicleID returns the assigned vehicle's id, or nil if unassigned.
func (o *Order) VehicleID() *string {
	return o.vehicleID
}

// PickupAddress returns the pickup address.
func (o *Order) PickupAddress() Address {
	return o.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() Address {
	return o.deliveryAddress
}

// Items returns the order's items. The slice is owned by the aggregate.
func (o *Order) Items() []*Item {
	return o.items
}

// Pricing returns the computed distance and fees.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PatchDelivery updates the delivery address while the order is still in
// Created status. Instructions are overwritten unconditionally; the
// coordinate pair is overwritten only when newPoint is non-nil, leaving the
// existing coordinates untouched otherwise.
//
// Pickup-address patches are an open extension point and intentionally have
// no counterpart here yet.
func (o *Order) PatchDelivery(instructions string, newPoint *kernel.GeoPoint) error {
	if err := o.status.ValidateCanPatch(); err != nil {
		return err
	}

	point := o.deliveryAddress.Point()
	if newPoint != nil {
		point = newPoint
	}

	patched, err := NewAddress(o.deliveryAddress.Street(), o.deliveryAddress.City(), instructions, point)
	if err != nil {
		return err
	}

	o.deliveryAddress = patched
	return nil
}

// Cancel transitions the order to Cancelled. Only orders in Created or
// PickedUp status can be cancelled; any other status is an invalid state.
// No compensating action (driver notification) is triggered here.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDriverAndVehicle records the driver and vehicle for the order.
// Assignment is rejected for cancelled orders and overwrites any previous
// assignment. It does not advance the lifecycle: moving to PICKED_UP is a
// separate, explicit transition.
func (o *Order) AssignDriverAndVehicle(driverID kernel.UUID, vehicleID string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleId")
	}
	if err := o.status.ValidateCanAssign(); err != nil {
		return err
	}

	o.driverID = &driverID
	o.vehicleID = &vehicleID
	return nil
}

// PickUp marks the package as collected by the driver.
func (o *Order) PickUp() error {
	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartRoute marks the package as on its way to the delivery address.
func (o *Order) StartRoute() error {
	newStatus, err := o.status.StartRoute()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered, a terminal state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverId", err)
	}
	id := *driverID
	o.driverID = &id
	return nil
}

func (o *Order) setAddresses(pickupAddress, deliveryAddress Address) error {
	if err := pickupAddress.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickupAddress", err)
	}
	if err := deliveryAddress.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	o.pickupAddress = pickupAddress
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
