package order

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress constructor.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a value object describing a pickup or delivery location:
// street and city are required, free-text instructions and the coordinate
// pair are optional. Fare calculation requires the coordinate pair; an
// address without one is rejected by the distance computation, not here.
type Address struct { //nolint:recvcheck //using for validation
	street       string
	city         string
	instructions string
	point        *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAddress creates an Address. Street and city must be non-empty;
// instructions and point may be empty/nil.
func NewAddress(street, city, instructions string, point *kernel.GeoPoint) (Address, error) {
	a := Address{
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setStreet(street),
		a.setCity(city),
		a.setPoint(point),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate checks that the Address was created through its constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Instructions returns the free-text delivery instructions, possibly empty.
func (a Address) Instructions() string {
	return a.instructions
}

// Point returns the coordinate pair, or nil if none was provided.
func (a Address) Point() *kernel.GeoPoint {
	return a.point
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}
	p := *point
	a.point = &p
	return nil
}
