package services

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/domain/model/tariff"

	"github.com/shopspring/decimal"
)

// MaxCoverageKm is the service coverage ceiling. Routes longer than this are
// rejected outright; no tariff can price them.
const MaxCoverageKm = 50

// ErrOutOfCoverage is returned when the pickup-to-delivery distance exceeds
// the coverage area. The order must not be created in that case.
var ErrOutOfCoverage = errors.New("delivery distance exceeds coverage area")

// FareCalculator is a domain service that prices an order before it exists:
// it measures the route between pickup and delivery and turns the distance
// and a vehicle tariff into a consistent Pricing value.
//
// Pricing rules:
//   - Distance is the great-circle distance in km, rounded to 2 decimals
//   - Raw distances above MaxCoverageKm are out of coverage
//   - Trip fee is the tariff's base cost for short routes (below the minimum
//     billable distance) and distance times cost-per-km otherwise
//   - Service fee is the tariff's base cost, charged on every order
//   - Total is trip fee plus service fee
//
// Note that the per-km rate applies to the whole distance, not only the part
// above the minimum. A route just past the minimum can therefore price below
// the base cost; this mirrors the published tariff sheet.
type FareCalculator struct{}

// NewFareCalculator creates a new FareCalculator instance.
func NewFareCalculator() FareCalculator {
	return FareCalculator{}
}

// Distance measures the route between pickup and delivery and returns it
// rounded to 2 decimals. The coverage ceiling is compared against the raw
// distance, so a 50.004 km route is rejected even though it would round to
// 50.00.
func (f FareCalculator) Distance(pickup, delivery kernel.GeoPoint) (decimal.Decimal, error) {
	rawKm, err := pickup.DistanceTo(delivery)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if rawKm > MaxCoverageKm {
		return decimal.Decimal{}, ErrOutOfCoverage
	}

	return decimal.NewFromFloat(rawKm).Round(2), nil
}

// Calculate prices a measured route under the given tariff. The distance is
// expected to come from Distance, already rounded and within coverage.
func (f FareCalculator) Calculate(
	distanceKm decimal.Decimal,
	t *tariff.Tariff,
) (order.Pricing, error) {
	if err := t.Validate(); err != nil {
		return order.Pricing{}, err
	}

	tripFee := t.BaseCost()
	if distanceKm.GreaterThanOrEqual(decimal.NewFromInt(int64(t.MinDistanceKm()))) {
		tripFee = distanceKm.Mul(t.CostPerKm())
	}

	serviceFee := t.BaseCost()

	return order.NewPricing(distanceKm, tripFee, serviceFee, tripFee.Add(serviceFee))
}
