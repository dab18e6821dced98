package matching

import (
	"math"
	"testing"

	"nestly/models"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmReferenceValue(t *testing.T) {
	// One degree of longitude on the equator is ~111.19 km.
	a := models.NewGeoPoint(0, 0)
	b := models.NewGeoPoint(0, 1)

	assert.InDelta(t, 111.19, DistanceKm(a, b), 0.1)
}

func TestDistanceKmSymmetry(t *testing.T) {
	a := models.NewGeoPoint(23.78, 90.41)
	b := models.NewGeoPoint(23.81, 90.37)

	assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
}

func TestDistanceKmSamePointIsZero(t *testing.T) {
	a := models.NewGeoPoint(-33.87, 151.21)

	assert.Equal(t, 0.0, DistanceKm(a, a))
}

func TestDistanceKmRoundedToTwoDecimals(t *testing.T) {
	a := models.NewGeoPoint(51.5007, -0.1246)
	b := models.NewGeoPoint(48.8584, 2.2945)

	d := DistanceKm(a, b)
	assert.InDelta(t, math.Round(d*100)/100, d, 1e-9)
	assert.Greater(t, d, 300.0)
	assert.Less(t, d, 400.0)
}
