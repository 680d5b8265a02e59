// Package tariffrepo persists the pricing tariff sheet. Tariffs are keyed by
// vehicle type; the sheet is small, read often, and written only at seeding
// or by operations tooling.
package tariffrepo

import (
	"lastmile/internal/core/domain/model/tariff"

	"github.com/shopspring/decimal"
)

// TariffDTO represents the database structure for a pricing rule.
type TariffDTO struct {
	VehicleType   string          `gorm:"primaryKey"`
	ZoneID        string          `gorm:"column:zone_id"`
	BaseCost      decimal.Decimal `gorm:"type:numeric(12,2)"`
	CostPerKm     decimal.Decimal `gorm:"type:numeric(12,2)"`
	CostPerKg     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	MinDistanceKm int
}

// TableName specifies the database table name for tariffs.
func (TariffDTO) TableName() string {
	return "tariffs"
}

func fromDomain(aggregate *tariff.Tariff) TariffDTO {
	dto := TariffDTO{
		VehicleType:   aggregate.VehicleType().String(),
		ZoneID:        aggregate.ZoneID(),
		BaseCost:      aggregate.BaseCost(),
		CostPerKm:     aggregate.CostPerKm(),
		MinDistanceKm: aggregate.MinDistanceKm(),
	}

	if v := aggregate.CostPerKg(); v != nil {
		dto.CostPerKg = decimal.NullDecimal{Decimal: *v, Valid: true}
	}

	return dto
}

func toDomain(dto TariffDTO) (*tariff.Tariff, error) {
	vehicleType, err := tariff.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	var costPerKg *decimal.Decimal
	if dto.CostPerKg.Valid {
		costPerKg = &dto.CostPerKg.Decimal
	}

	return tariff.NewTariff(
		vehicleType, dto.ZoneID,
		dto.BaseCost, dto.CostPerKm, costPerKg, dto.MinDistanceKm,
	)
}
