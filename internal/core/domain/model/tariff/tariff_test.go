package tariff_test

import (
	"testing"

	"lastmile/internal/core/domain/model/tariff"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTariff(t *testing.T) {
	t.Run("creates valid tariff", func(t *testing.T) {
		perKg := decimal.NewFromFloat(0.5)

		tr, err := tariff.NewTariff(
			tariff.Motorcycle, "quito-north",
			decimal.NewFromInt(5), decimal.NewFromInt(2), &perKg, 3,
		)

		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		assert.Equal(t, tariff.Motorcycle, tr.VehicleType())
		assert.Equal(t, "quito-north", tr.ZoneID())
		assert.True(t, tr.BaseCost().Equal(decimal.NewFromInt(5)))
		assert.True(t, tr.CostPerKm().Equal(decimal.NewFromInt(2)))
		require.NotNil(t, tr.CostPerKg())
		assert.True(t, tr.CostPerKg().Equal(perKg))
		assert.Equal(t, 3, tr.MinDistanceKm())
	})

	t.Run("cost per kg is optional", func(t *testing.T) {
		tr, err := tariff.NewTariff(
			tariff.Truck, "quito-north",
			decimal.NewFromInt(20), decimal.NewFromInt(4), nil, 5,
		)

		require.NoError(t, err)
		assert.Nil(t, tr.CostPerKg())
	})

	t.Run("rejects unknown vehicle type", func(t *testing.T) {
		_, err := tariff.NewTariff(
			tariff.UnknownVehicle, "z",
			decimal.NewFromInt(5), decimal.NewFromInt(2), nil, 3,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "vehicleType")
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := tariff.NewTariff(
			tariff.Motorcycle, "z",
			decimal.NewFromInt(-5), decimal.NewFromInt(2), nil, 3,
		)
		require.Error(t, err)

		_, err = tariff.NewTariff(
			tariff.Motorcycle, "z",
			decimal.NewFromInt(5), decimal.NewFromInt(-2), nil, 3,
		)
		require.Error(t, err)

		_, err = tariff.NewTariff(
			tariff.Motorcycle, "z",
			decimal.NewFromInt(5), decimal.NewFromInt(2), nil, -1,
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var tr tariff.Tariff
		require.Error(t, tr.Validate())
	})
}

func TestVehicleType(t *testing.T) {
	t.Run("string round-trip", func(t *testing.T) {
		for _, vt := range tariff.VehicleTypes() {
			parsed, err := tariff.VehicleTypeFromString(vt.String())
			require.NoError(t, err)
			assert.Equal(t, vt, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := tariff.VehicleTypeFromString("BICYCLE")
		require.Error(t, err)
	})

	t.Run("unknown fails validation", func(t *testing.T) {
		require.Error(t, tariff.UnknownVehicle.Validate())
		require.Error(t, tariff.VehicleType(99).Validate())
	})
}
