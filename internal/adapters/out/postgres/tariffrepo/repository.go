package tariffrepo

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/tariff"
	"lastmile/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// Add saves a new tariff to the database.
func (r *GormTariffRepository) Add(ctx context.Context, aggregate *tariff.Tariff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"vehicleType", aggregate.VehicleType().String(), err)
		}
		return err
	}

	return nil
}

// GetByVehicleType retrieves the tariff configured for a vehicle class.
func (r *GormTariffRepository) GetByVehicleType(
	ctx context.Context,
	vehicleType tariff.VehicleType,
) (*tariff.Tariff, error) {
	if err := vehicleType.Validate(); err != nil {
		return nil, err
	}

	var dto TariffDTO
	err := r.db.WithContext(ctx).First(&dto, "vehicle_type = ?", vehicleType.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicleType", vehicleType.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every configured tariff.
func (r *GormTariffRepository) GetAll(ctx context.Context) ([]*tariff.Tariff, error) {
	var dtos []TariffDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	tariffs := make([]*tariff.Tariff, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tariffs = append(tariffs, t)
	}

	return tariffs, nil
}
