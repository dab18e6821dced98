package matching

import (
	"math"

	"nestly/models"
)

// Scoring constants. Sub-scores are independent and summed, then clamped.
const (
	maxDistancePoints    = 40.0
	distancePenaltyPerKm = 4.0
	maxRatingPoints      = 30.0
	availabilityPoints   = 10.0
	rateBandPoints       = 5.0
	rateBandLow          = 200.0
	rateBandHigh         = 500.0
	maxScore             = 100
)

// experienceTierPoints maps a declared experience tier to its score
// contribution. Missing or unrecognized tiers contribute nothing.
var experienceTierPoints = map[string]float64{
	models.TierBeginner:     5,
	models.TierIntermediate: 10,
	models.TierExperienced:  15,
}

// Score computes the [0,100] suitability score for a provider at the given
// distance from the parent. Deterministic, no side effects.
func Score(p models.Provider, distanceKm float64) int {
	total := distanceScore(distanceKm) +
		ratingScore(p.Profile.Rating) +
		experienceTierPoints[p.ExperienceTier] +
		availabilityScore(p.Availability) +
		rateBandBonus(p.HourlyRate)

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// distanceScore awards up to 40 points, decaying linearly to 0 at 10 km.
func distanceScore(distanceKm float64) float64 {
	s := maxDistancePoints - distanceKm*distancePenaltyPerKm
	if s < 0 {
		return 0
	}
	return s
}

// ratingScore awards up to 30 points proportional to the 0..5 rating.
// An unrated provider (rating 0) contributes nothing.
func ratingScore(rating float64) float64 {
	return rating / 5 * maxRatingPoints
}

// availabilityScore awards 10 points when the provider has declared at least
// one free slot on any weekday. This is an existence check only.
func availabilityScore(w models.WeeklyAvailability) float64 {
	if w.HasAnySlots() {
		return availabilityPoints
	}
	return 0
}

// rateBandBonus awards 5 points when the hourly rate falls in the reasonable
// band [200,500] inclusive. Rates outside the band get no bonus, not a penalty.
func rateBandBonus(hourlyRate float64) float64 {
	if hourlyRate >= rateBandLow && hourlyRate <= rateBandHigh {
		return rateBandPoints
	}
	return 0
}
