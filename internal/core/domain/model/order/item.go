package order

import (
	"errors"
	"fmt"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item owned exclusively by one Order. It has no independent
// lifecycle: items are persisted and deleted together with their order.
type Item struct {
	id            kernel.UUID
	description   string
	quantity      int
	weightKg      decimal.Decimal
	declaredValue *decimal.Decimal
	handlingFee   *decimal.Decimal

	isConstructed bool
}

// NewItem creates an Item with a fresh identifier.
// Description must be non-empty, quantity a positive integer, and weight
// positive. Declared value and handling fee are optional.
func NewItem(
	description string,
	quantity int,
	weightKg decimal.Decimal,
	declaredValue *decimal.Decimal,
	handlingFee *decimal.Decimal,
) (*Item, error) {
	return RestoreItem(kernel.NewUUID(), description, quantity, weightKg, declaredValue, handlingFee)
}

// RestoreItem reconstructs an Item from persistence with an existing id.
func RestoreItem(
	id kernel.UUID,
	description string,
	quantity int,
	weightKg decimal.Decimal,
	declaredValue *decimal.Decimal,
	handlingFee *decimal.Decimal,
) (*Item, error) {
	item := &Item{
		declaredValue: declaredValue,
		handlingFee:   handlingFee,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setWeightKg(weightKg),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Description returns the item description.
func (i *Item) Description() string {
	return i.description
}

// Quantity returns the item quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// WeightKg returns the item weight in kilograms.
func (i *Item) WeightKg() decimal.Decimal {
	return i.weightKg
}

// DeclaredValue returns the optional declared value, or nil.
func (i *Item) DeclaredValue() *decimal.Decimal {
	return i.declaredValue
}

// HandlingFee returns the optional handling fee, or nil.
func (i *Item) HandlingFee() *decimal.Decimal {
	return i.handlingFee
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setWeightKg(weightKg decimal.Decimal) error {
	if !weightKg.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%s is not greater than 0", weightKg))
	}
	i.weightKg = weightKg
	return nil
}
