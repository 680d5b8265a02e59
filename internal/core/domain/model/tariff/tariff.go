// Package tariff contains the pricing rule entity: a tariff bound to a
// vehicle type with a base cost, per-km cost, optional per-kg cost, and a
// minimum billable distance. One tariff per vehicle type is expected; the
// lookup is not ambiguity-safe.
package tariff

import (
	"errors"
	"fmt"

	"lastmile/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrTariffIsNotConstructed is returned when a Tariff instance was not
// created through the NewTariff factory method.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")

// Tariff is the pricing rule for one vehicle class.
type Tariff struct {
	vehicleType VehicleType
	zoneID      string
	baseCost    decimal.Decimal
	costPerKm   decimal.Decimal
	costPerKg   *decimal.Decimal
	minDistance int

	isConstructed bool
}

// NewTariff creates a Tariff. Base cost and cost-per-km must be non-negative,
// the minimum billable distance must not be negative, and the vehicle type
// must be a defined class. Cost-per-kg is optional and currently unused by
// fare computation.
func NewTariff(
	vehicleType VehicleType,
	zoneID string,
	baseCost decimal.Decimal,
	costPerKm decimal.Decimal,
	costPerKg *decimal.Decimal,
	minDistanceKm int,
) (*Tariff, error) {
	t := &Tariff{
		zoneID:        zoneID,
		costPerKg:     costPerKg,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setVehicleType(vehicleType),
		t.setBaseCost(baseCost),
		t.setCostPerKm(costPerKm),
		t.setMinDistanceKm(minDistanceKm),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Tariff was created through its constructor.
func (t *Tariff) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTariffIsNotConstructed
	}
	return nil
}

// VehicleType returns the vehicle class this tariff prices.
func (t *Tariff) VehicleType() VehicleType {
	return t.vehicleType
}

// ZoneID returns the operational zone the tariff belongs to.
func (t *Tariff) ZoneID() string {
	return t.zoneID
}

// BaseCost returns the flat cost component; it doubles as the minimum fare
// and as the per-order service fee.
func (t *Tariff) BaseCost() decimal.Decimal {
	return t.baseCost
}

// CostPerKm returns the distance rate.
func (t *Tariff) CostPerKm() decimal.Decimal {
	return t.costPerKm
}

// CostPerKg returns the optional weight rate, or nil. Reserved for future
// weight-based pricing.
func (t *Tariff) CostPerKg() *decimal.Decimal {
	return t.costPerKg
}

// MinDistanceKm returns the minimum billable distance in kilometres.
func (t *Tariff) MinDistanceKm() int {
	return t.minDistance
}

func (t *Tariff) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	t.vehicleType = vehicleType
	return nil
}

func (t *Tariff) setBaseCost(baseCost decimal.Decimal) error {
	if baseCost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("baseCost",
			fmt.Errorf("%s is negative", baseCost))
	}
	t.baseCost = baseCost
	return nil
}

func (t *Tariff) setCostPerKm(costPerKm decimal.Decimal) error {
	if costPerKm.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("costPerKm",
			fmt.Errorf("%s is negative", costPerKm))
	}
	t.costPerKm = costPerKm
	return nil
}

func (t *Tariff) setMinDistanceKm(minDistanceKm int) error {
	if minDistanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minDistanceKm",
			fmt.Errorf("%d is negative", minDistanceKm))
	}
	t.minDistance = minDistanceKm
	return nil
}
