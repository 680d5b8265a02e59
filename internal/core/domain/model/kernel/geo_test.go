package kernel_test

import (
	"fmt"
	"math"
	"testing"

	"lastmile/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(-0.1807, -78.4678)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, -0.1807, p.Latitude(), 1e-9)
		assert.InDelta(t, -78.4678, p.Longitude(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		boundaries := [][2]float64{
			{kernel.MinLatitude, 0},
			{kernel.MaxLatitude, 0},
			{0, kernel.MinLongitude},
			{0, kernel.MaxLongitude},
		}

		for _, b := range boundaries {
			t.Run(fmt.Sprintf("lat=%.0f lon=%.0f", b[0], b[1]), func(t *testing.T) {
				_, err := kernel.NewGeoPoint(b[0], b[1])
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		for _, lat := range []float64{-90.01, 91, 250} {
			_, err := kernel.NewGeoPoint(lat, 0)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "latitude")
		}
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		for _, lon := range []float64{-180.01, 181, 400} {
			_, err := kernel.NewGeoPoint(0, lon)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "longitude")
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "geo point must be created")
	})
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(-0.1807, -78.4678)

		d, err := p.DistanceTo(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(-0.1807, -78.4678)
		b, _ := kernel.NewGeoPoint(-0.2299, -78.5249)

		d1, err := a.DistanceTo(b)
		require.NoError(t, err)
		d2, err := b.DistanceTo(a)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		b, _ := kernel.NewGeoPoint(1, 0)

		d, err := a.DistanceTo(b)

		require.NoError(t, err)
		// 2*pi*6371/360 = 111.1949 km
		assert.InDelta(t, 111.1949, d, 0.01)
	})

	t.Run("known city pair distance", func(t *testing.T) {
		// Quito centre to Sangolqui, roughly 14 km apart.
		a, _ := kernel.NewGeoPoint(-0.1807, -78.4678)
		b, _ := kernel.NewGeoPoint(-0.3341, -78.4444)

		d, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.Greater(t, d, 10.0)
		assert.Less(t, d, 20.0)
	})

	t.Run("fails for unconstructed points", func(t *testing.T) {
		var zero kernel.GeoPoint
		p, _ := kernel.NewGeoPoint(0, 0)

		_, err := p.DistanceTo(zero)
		require.Error(t, err)

		_, err = zero.DistanceTo(p)
		require.Error(t, err)
	})

	t.Run("antipodal distance is half the circumference", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		b, _ := kernel.NewGeoPoint(0, 180)

		d, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, math.Pi*kernel.EarthRadiusKm, d, 0.01)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(1.5, 2.5)
	b, _ := kernel.NewGeoPoint(1.5, 2.5)
	c, _ := kernel.NewGeoPoint(1.5, 2.6)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)
}
