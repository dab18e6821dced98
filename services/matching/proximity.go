package matching

import (
	"sort"

	"nestly/models"
)

// NearbyProvider is a distance-annotated roster entry.
type NearbyProvider struct {
	Provider   models.Provider `json:"provider"`
	DistanceKm float64         `json:"distanceKm"`
}

// FindNearby selects providers within maxDistanceKm of origin, sorted
// ascending by distance (stable, input order preserved on ties). Providers
// without usable location data are skipped. A missing or invalid origin
// yields an empty result, not an error.
func FindNearby(origin *models.GeoPoint, providers []models.Provider, maxDistanceKm float64) []NearbyProvider {
	if !origin.Valid() {
		return nil
	}

	var nearby []NearbyProvider
	for _, p := range providers {
		if !p.HasLocation() {
			continue
		}
		d := DistanceKm(origin, p.Profile.LocationGeo)
		if d <= maxDistanceKm {
			nearby = append(nearby, NearbyProvider{Provider: p, DistanceKm: d})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby
}
