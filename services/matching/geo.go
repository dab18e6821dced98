package matching

import (
	"math"

	"nestly/models"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371

// DistanceKm calculates the great-circle distance (in km) between two points
// using the Haversine formula, rounded to two decimal places. Symmetric;
// DistanceKm(a, a) == 0. Callers supply valid coordinates.
func DistanceKm(a, b *models.GeoPoint) float64 {
	return haversine(a.Latitude(), a.Longitude(), b.Latitude(), b.Longitude())
}

// haversine calculates the great-circle distance (in km) between two lat/lon points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return math.Round(earthRadiusKm*c*100) / 100
}
