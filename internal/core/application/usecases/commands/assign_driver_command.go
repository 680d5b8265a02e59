package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a dispatcher's request to put a driver and a
// vehicle on an order. The vehicle id is the fleet system's identifier and is
// treated as opaque text here.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	driverID  kernel.UUID
	vehicleID string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver and vehicle.
func NewAssignDriverCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	vehicleID string,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the id of the order to assign.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the id of the driver taking the order.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the fleet identifier of the vehicle.
func (c AssignDriverCommand) VehicleID() string {
	return c.vehicleID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverId", err)
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleId")
	}

	c.vehicleID = vehicleID
	return nil
}
