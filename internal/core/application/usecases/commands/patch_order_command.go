package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var ErrPatchOrderCommandIsNotConstructed = errors.New(
	"PatchOrderCommand must be created via NewPatchOrderCommand constructor",
)

// PatchOrderCommand represents a request to amend the delivery address of an
// order that has not yet been picked up. Instructions are replaced
// unconditionally; coordinates only when a new point is supplied.
type PatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	instructions string
	point        *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewPatchOrderCommand creates a command to amend an order's delivery address.
// An empty instructions string is valid and clears the current instructions.
func NewPatchOrderCommand(
	orderID kernel.UUID,
	instructions string,
	point *kernel.GeoPoint,
) (PatchOrderCommand, error) {
	cmd := PatchOrderCommand{
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPoint(point),
	); err != nil {
		return PatchOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrPatchOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to amend.
func (c PatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Instructions returns the replacement delivery instructions.
func (c PatchOrderCommand) Instructions() string {
	return c.instructions
}

// Point returns the replacement coordinates, or nil to keep the current ones.
func (c PatchOrderCommand) Point() *kernel.GeoPoint {
	return c.point
}

func (c *PatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PatchOrderCommand) setPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}
