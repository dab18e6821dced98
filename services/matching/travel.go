package matching

import (
	"math"

	"nestly/models"
)

// Travel modes a parent can ask estimates for.
const (
	ModeCar  = "car"
	ModeBike = "bike"
	ModeWalk = "walk"
)

// speedKmh maps a travel mode to its flat speed estimate. An unrecognized
// mode falls back to car.
var speedKmh = map[string]float64{
	ModeCar:  30,
	ModeBike: 15,
	ModeWalk: 5,
}

// travelLabel buckets a travel duration into a qualitative label.
func travelLabel(minutes int) string {
	switch {
	case minutes < 5:
		return "Very close"
	case minutes < 15:
		return "Close by"
	case minutes < 30:
		return "Nearby"
	default:
		return "Far"
	}
}

// EstimateTravel maps a distance and travel mode to a rough duration and a
// qualitative label. Pure function, no failure modes.
func EstimateTravel(distanceKm float64, mode string) models.TravelEstimate {
	speed, ok := speedKmh[mode]
	if !ok {
		mode = ModeCar
		speed = speedKmh[ModeCar]
	}
	minutes := int(math.Ceil(distanceKm / speed * 60))
	return models.TravelEstimate{
		Minutes: minutes,
		Label:   travelLabel(minutes),
		Mode:    mode,
	}
}
