package ports

import (
	"context"

	"lastmile/internal/core/domain/model/tariff"
)

// TariffRepository defines the persistence contract for pricing tariffs.
// One tariff per vehicle type is expected; the lookup returns the first match.
type TariffRepository interface {
	// Add persists a new tariff to storage.
	Add(ctx context.Context, aggregate *tariff.Tariff) error

	// GetByVehicleType retrieves the tariff configured for a vehicle class.
	// Returns errs.ErrObjectNotFound when no tariff is configured for it.
	GetByVehicleType(ctx context.Context, vehicleType tariff.VehicleType) (*tariff.Tariff, error)

	// GetAll retrieves every configured tariff. Used at startup to decide
	// whether the default tariff sheet needs seeding.
	GetAll(ctx context.Context) ([]*tariff.Tariff, error)
}
