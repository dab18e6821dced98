package matching

import (
	"sort"

	"nestly/models"
)

// matchLabel buckets a match score into a user-facing label.
func matchLabel(score int) string {
	switch {
	case score >= 85:
		return "Perfect Match"
	case score >= 70:
		return "Great Match"
	case score >= 55:
		return "Good Match"
	case score >= 40:
		return "Fair Match"
	default:
		return "Low Match"
	}
}

// RankCandidates filters, scores and ranks a roster of providers against a
// parent's location and preferences, returning at most prefs.Limit entries
// sorted descending by match score (stable on ties). A missing parent
// location yields an empty result.
func RankCandidates(origin *models.GeoPoint, providers []models.Provider, prefs models.MatchPreferences) []models.ScoredCandidate {
	if !origin.Valid() {
		return nil
	}
	prefs = prefs.Normalize()

	var candidates []models.ScoredCandidate
	for _, p := range providers {
		if !p.HasLocation() {
			continue
		}
		if p.Profile.Rating < prefs.MinRating {
			continue
		}
		if p.HourlyRate > prefs.MaxRate {
			continue
		}
		d := DistanceKm(origin, p.Profile.LocationGeo)
		if d > prefs.MaxDistanceKm {
			continue
		}

		score := Score(p, d)
		candidates = append(candidates, models.ScoredCandidate{
			Provider:   p,
			DistanceKm: d,
			MatchScore: score,
			MatchLabel: matchLabel(score),
			TravelTime: EstimateTravel(d, ModeCar),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})

	if len(candidates) > prefs.Limit {
		candidates = candidates[:prefs.Limit]
	}
	return candidates
}
