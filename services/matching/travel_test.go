package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTravelModes(t *testing.T) {
	tests := []struct {
		name        string
		distanceKm  float64
		mode        string
		wantMinutes int
		wantLabel   string
		wantMode    string
	}{
		{"short car trip", 2, ModeCar, 4, "Very close", ModeCar},
		{"bike trip", 3, ModeBike, 12, "Close by", ModeBike},
		{"walk trip", 2, ModeWalk, 24, "Nearby", ModeWalk},
		{"long car trip", 20, ModeCar, 40, "Far", ModeCar},
		{"unknown mode falls back to car", 2, "scooter", 4, "Very close", ModeCar},
		{"zero distance", 0, ModeCar, 0, "Very close", ModeCar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := EstimateTravel(tt.distanceKm, tt.mode)
			assert.Equal(t, tt.wantMinutes, est.Minutes)
			assert.Equal(t, tt.wantLabel, est.Label)
			assert.Equal(t, tt.wantMode, est.Mode)
		})
	}
}

func TestEstimateTravelRoundsUp(t *testing.T) {
	// 1.4 km by car is 2.8 minutes; estimates round up to whole minutes.
	est := EstimateTravel(1.4, ModeCar)
	assert.Equal(t, 3, est.Minutes)
}
