package matching

import (
	"testing"

	"nestly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidatesMissingParentLocation(t *testing.T) {
	providers := []models.Provider{locatedSitter("a", 23.78, 90.41)}

	assert.Empty(t, RankCandidates(nil, providers, models.MatchPreferences{}))
}

func TestRankCandidatesLimit(t *testing.T) {
	origin := models.NewGeoPoint(0, 0)
	var providers []models.Provider
	for i := 0; i < 10; i++ {
		providers = append(providers, locatedSitter(string(rune('a'+i)), 0, 0.01))
	}

	ranked := RankCandidates(origin, providers, models.MatchPreferences{Limit: 3})

	assert.Len(t, ranked, 3)
}

func TestRankCandidatesDescendingByScore(t *testing.T) {
	origin := models.NewGeoPoint(23.78, 90.41)
	strong := locatedSitter("strong", 23.79, 90.42)
	strong.Profile.Rating = 5
	strong.ExperienceTier = models.TierExperienced
	strong.HourlyRate = 300
	strong.Availability = weekdayMornings()

	weak := locatedSitter("weak", 23.781, 90.411)
	weak.Profile.Rating = 2

	ranked := RankCandidates(origin, []models.Provider{weak, strong}, models.MatchPreferences{})

	require.Len(t, ranked, 2)
	assert.Equal(t, "strong", ranked[0].Provider.ID)
	assert.GreaterOrEqual(t, ranked[0].MatchScore, ranked[1].MatchScore)
}

func TestRankCandidatesEndToEnd(t *testing.T) {
	origin := models.NewGeoPoint(23.78, 90.41)

	qualified := locatedSitter("qualified", 23.79, 90.42) // ~1.5 km
	qualified.Profile.Rating = 4.5
	qualified.ExperienceTier = models.TierExperienced
	qualified.HourlyRate = 300
	qualified.Availability = weekdayMornings()

	closeButPlain := locatedSitter("close-but-plain", 23.781, 90.411) // ~0.15 km
	closeButPlain.Profile.Rating = 4
	closeButPlain.ExperienceTier = models.TierBeginner
	closeButPlain.HourlyRate = 600

	lowRated := locatedSitter("low-rated", 23.785, 90.415)
	lowRated.Profile.Rating = 3

	tooFar := locatedSitter("too-far", 24.5, 91.2)
	tooFar.Profile.Rating = 5

	tooExpensive := locatedSitter("too-expensive", 23.782, 90.412)
	tooExpensive.Profile.Rating = 4.8
	tooExpensive.HourlyRate = 1200

	providers := []models.Provider{qualified, closeButPlain, lowRated, tooFar, tooExpensive}
	prefs := models.MatchPreferences{MaxDistanceKm: 5, MinRating: 4, Limit: 3}

	ranked := RankCandidates(origin, providers, prefs)

	require.Len(t, ranked, 2)
	// The higher-scoring sitter wins even though they are farther away.
	assert.Equal(t, "qualified", ranked[0].Provider.ID)
	assert.Equal(t, "close-but-plain", ranked[1].Provider.ID)

	for _, c := range ranked {
		assert.LessOrEqual(t, c.DistanceKm, 5.0)
		assert.GreaterOrEqual(t, c.Provider.Profile.Rating, 4.0)
		// Reported score matches the scorer recomputed on the same inputs.
		assert.Equal(t, Score(c.Provider, c.DistanceKm), c.MatchScore)
		assert.Equal(t, ModeCar, c.TravelTime.Mode)
		assert.NotEmpty(t, c.MatchLabel)
	}
}

func TestMatchLabelThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Perfect Match"},
		{85, "Perfect Match"},
		{84, "Great Match"},
		{70, "Great Match"},
		{55, "Good Match"},
		{40, "Fair Match"},
		{39, "Low Match"},
		{0, "Low Match"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchLabel(tt.score), "score %d", tt.score)
	}
}
