package order

import (
	"errors"
	"fmt"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPricingIsNotConstructed is returned when a Pricing was not created
// through the NewPricing constructor.
var ErrPricingIsNotConstructed = errs.NewValueIsRequiredError(
	"pricing must be created via NewPricing constructor")

// Pricing holds the computed monetary values of an order: the distance in
// kilometres (2-decimal precision), the distance-derived trip fee, the fixed
// service fee, and the total.
//
// Invariant: total = tripFee + serviceFee. The constructor rejects any other
// combination, so a persisted order can never carry an inconsistent total.
type Pricing struct { //nolint:recvcheck //using for validation
	distanceKm decimal.Decimal
	tripFee    decimal.Decimal
	serviceFee decimal.Decimal
	total      decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPricing creates a Pricing. Distance and both fees must be non-negative
// and total must equal tripFee + serviceFee exactly.
func NewPricing(distanceKm, tripFee, serviceFee, total decimal.Decimal) (Pricing, error) {
	p := Pricing{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setDistanceKm(distanceKm),
		p.setFees(tripFee, serviceFee, total),
	); err != nil {
		return Pricing{}, err
	}

	return p, nil
}

// Validate checks that the Pricing was created through its constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// DistanceKm returns the pickup-to-delivery distance in kilometres.
func (p Pricing) DistanceKm() decimal.Decimal {
	return p.distanceKm
}

// TripFee returns the distance-derived portion of the order cost.
func (p Pricing) TripFee() decimal.Decimal {
	return p.tripFee
}

// ServiceFee returns the fixed per-order charge.
func (p Pricing) ServiceFee() decimal.Decimal {
	return p.serviceFee
}

// Total returns the total amount: trip fee plus service fee.
func (p Pricing) Total() decimal.Decimal {
	return p.total
}

func (p *Pricing) setDistanceKm(distanceKm decimal.Decimal) error {
	if distanceKm.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%s is negative", distanceKm))
	}
	p.distanceKm = distanceKm
	return nil
}

func (p *Pricing) setFees(tripFee, serviceFee, total decimal.Decimal) error {
	if tripFee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("tripFee",
			fmt.Errorf("%s is negative", tripFee))
	}
	if serviceFee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("serviceFee",
			fmt.Errorf("%s is negative", serviceFee))
	}
	if !total.Equal(tripFee.Add(serviceFee)) {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s does not equal tripFee %s + serviceFee %s", total, tripFee, serviceFee))
	}

	p.tripFee = tripFee
	p.serviceFee = serviceFee
	p.total = total
	return nil
}
