package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeoPointValid(t *testing.T) {
	assert.True(t, NewGeoPoint(23.78, 90.41).Valid())
	assert.False(t, (*GeoPoint)(nil).Valid())
	assert.False(t, (&GeoPoint{Type: "Point"}).Valid())
	assert.False(t, (&GeoPoint{Type: "Point", Coordinates: []float64{200, 0}}).Valid())
	assert.False(t, (&GeoPoint{Type: "Point", Coordinates: []float64{0, 95}}).Valid())
}

func TestGeoPointAccessors(t *testing.T) {
	p := NewGeoPoint(23.78, 90.41)
	assert.Equal(t, 23.78, p.Latitude())
	assert.Equal(t, 90.41, p.Longitude())
	assert.Equal(t, "Point", p.Type)
}

func TestMatchPreferencesNormalize(t *testing.T) {
	defaults := MatchPreferences{}.Normalize()
	assert.Equal(t, DefaultMaxDistanceKm, defaults.MaxDistanceKm)
	assert.Equal(t, DefaultMinRating, defaults.MinRating)
	assert.Equal(t, DefaultMaxRate, defaults.MaxRate)
	assert.Equal(t, DefaultMatchLimit, defaults.Limit)

	custom := MatchPreferences{MaxDistanceKm: 10, MinRating: 4, MaxRate: 500, Limit: 2}.Normalize()
	assert.Equal(t, MatchPreferences{MaxDistanceKm: 10, MinRating: 4, MaxRate: 500, Limit: 2}, custom)

	nonsense := MatchPreferences{MaxDistanceKm: -1, MinRating: -2, MaxRate: -3, Limit: -4}.Normalize()
	assert.Equal(t, defaults, nonsense)
}

func TestWeeklyAvailability(t *testing.T) {
	w := WeeklyAvailability{
		"monday":  {{Start: 540, End: 720}},
		"tuesday": {},
	}

	assert.Equal(t, "monday", DayKey(time.Monday))
	assert.Len(t, w.SlotsFor(time.Monday), 1)
	assert.Empty(t, w.SlotsFor(time.Tuesday))
	assert.Empty(t, w.SlotsFor(time.Friday))
	assert.True(t, w.HasAnySlots())
	assert.False(t, WeeklyAvailability{}.HasAnySlots())
	assert.False(t, WeeklyAvailability{"sunday": {}}.HasAnySlots())
}

func TestTimeSlotIsValid(t *testing.T) {
	assert.True(t, TimeSlot{Start: 0, End: 1440}.IsValid())
	assert.False(t, TimeSlot{Start: 600, End: 600}.IsValid())
	assert.False(t, TimeSlot{Start: -10, End: 60}.IsValid())
	assert.False(t, TimeSlot{Start: 600, End: 1500}.IsValid())
}

func TestBookingIsActive(t *testing.T) {
	for _, status := range []string{BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted} {
		b := Booking{Status: status}
		assert.True(t, b.IsActive(), status)
	}
	for _, status := range []string{BookingStatusCancelled, BookingStatusRejected, ""} {
		b := Booking{Status: status}
		assert.False(t, b.IsActive(), status)
	}
}
