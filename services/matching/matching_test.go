package matching

import (
	"testing"
	"time"

	"nestly/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// stubProviderRepo serves a fixed roster and counts roster fetches.
type stubProviderRepo struct {
	providers []models.Provider
	getAlls   int
}

func (s *stubProviderRepo) GetByID(id string) (*models.Provider, error)    { return nil, nil }
func (s *stubProviderRepo) GetByEmail(email string) (*models.Provider, error) { return nil, nil }
func (s *stubProviderRepo) Create(p *models.Provider) error                { return nil }
func (s *stubProviderRepo) Update(p *models.Provider) error                { return nil }
func (s *stubProviderRepo) Delete(id string) error                         { return nil }
func (s *stubProviderRepo) UpdateWithDocument(id string, doc bson.M) error { return nil }
func (s *stubProviderRepo) SetAvailability(id string, a models.WeeklyAvailability) error {
	return nil
}

func (s *stubProviderRepo) GetAll() ([]models.Provider, error) {
	s.getAlls++
	return s.providers, nil
}

func TestSmartMatchesUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	sitter := locatedSitter("cached-sitter", 23.79, 90.42)
	sitter.Profile.Rating = 4.5
	sitter.Availability = weekdayMornings()

	repo := &stubProviderRepo{providers: []models.Provider{sitter}}
	svc := &DefaultMatchingService{
		ProviderRepo: repo,
		CacheClient:  cache,
		CacheTTL:     time.Minute,
	}
	origin := models.NewGeoPoint(23.78, 90.41)
	prefs := models.MatchPreferences{MaxDistanceKm: 5}

	first, err := svc.SmartMatches(origin, prefs)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.getAlls)

	// Second identical search is served from cache, not the repository.
	second, err := svc.SmartMatches(origin, prefs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getAlls)
}

func TestSmartMatchesWithoutCacheClient(t *testing.T) {
	sitter := locatedSitter("sitter", 23.79, 90.42)
	sitter.Profile.Rating = 4.5

	repo := &stubProviderRepo{providers: []models.Provider{sitter}}
	svc := &DefaultMatchingService{ProviderRepo: repo}

	got, err := svc.SmartMatches(models.NewGeoPoint(23.78, 90.41), models.MatchPreferences{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSmartMatchesDistinctSearchesDistinctKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	sitter := locatedSitter("sitter", 23.79, 90.42)
	sitter.Profile.Rating = 4.5

	repo := &stubProviderRepo{providers: []models.Provider{sitter}}
	svc := &DefaultMatchingService{ProviderRepo: repo, CacheClient: cache, CacheTTL: time.Minute}

	_, err := svc.SmartMatches(models.NewGeoPoint(23.78, 90.41), models.MatchPreferences{})
	require.NoError(t, err)
	_, err = svc.SmartMatches(models.NewGeoPoint(23.78, 90.41), models.MatchPreferences{MinRating: 4})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.getAlls)
}
