package models

// Default matching preferences applied when a parent leaves a field unset.
const (
	DefaultMaxDistanceKm = 5.0
	DefaultMinRating     = 0.0
	DefaultMaxRate       = 1000.0
	DefaultMatchLimit    = 5
)

// MatchPreferences are a parent's search constraints. Zero values mean
// "use the default".
type MatchPreferences struct {
	MaxDistanceKm float64 `json:"maxDistanceKm"`
	MinRating     float64 `json:"minRating"`
	MaxRate       float64 `json:"maxRate"`
	Limit         int     `json:"limit"`
}

// Normalize returns a copy with defaults applied to unset or nonsensical
// fields, so malformed preferences degrade to the defaults instead of
// erroring.
func (p MatchPreferences) Normalize() MatchPreferences {
	if p.MaxDistanceKm <= 0 {
		p.MaxDistanceKm = DefaultMaxDistanceKm
	}
	if p.MinRating < 0 {
		p.MinRating = DefaultMinRating
	}
	if p.MaxRate <= 0 {
		p.MaxRate = DefaultMaxRate
	}
	if p.Limit <= 0 {
		p.Limit = DefaultMatchLimit
	}
	return p
}

// TravelEstimate is a rough door-to-door travel figure for a candidate.
type TravelEstimate struct {
	Minutes int    `json:"minutes"`
	Label   string `json:"label"`
	Mode    string `json:"mode"`
}

// ScoredCandidate is one ranked entry of a match result. Created fresh per
// ranking call; never persisted.
type ScoredCandidate struct {
	Provider   Provider       `json:"provider"`
	DistanceKm float64        `json:"distanceKm"`
	MatchScore int            `json:"matchScore"`
	MatchLabel string         `json:"matchLabel"`
	TravelTime TravelEstimate `json:"travelTime"`
}
