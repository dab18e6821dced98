package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	providerRepo "nestly/database/repository/provider"
	"nestly/models"

	"github.com/go-redis/redis/v8"
)

// MatchingService defines methods to match sitters for a parent's search.
type MatchingService interface {
	SmartMatches(origin *models.GeoPoint, prefs models.MatchPreferences) ([]models.ScoredCandidate, error)
}

// DefaultMatchingService ranks the sitter roster from MongoDB, with a short
// Redis cache in front of the computation.
type DefaultMatchingService struct {
	ProviderRepo providerRepo.ProviderRepository
	CacheClient  *redis.Client
	CacheTTL     time.Duration
}

type matchCacheKey struct {
	Origin *models.GeoPoint        `json:"origin"`
	Prefs  models.MatchPreferences `json:"prefs"`
}

// SmartMatches retrieves a ranked list of sitters matching the parent's
// location and preferences. It first attempts to retrieve the result from
// cache; if not found, it computes the match and caches it.
func (s *DefaultMatchingService) SmartMatches(origin *models.GeoPoint, prefs models.MatchPreferences) ([]models.ScoredCandidate, error) {
	ctx := context.Background()
	prefs = prefs.Normalize()

	// Create a cache key based on the JSON representation of the search.
	keyBytes, err := json.Marshal(matchCacheKey{Origin: origin, Prefs: prefs})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match search: %w", err)
	}
	cacheKey := fmt.Sprintf("match:%x", keyBytes)

	// Try to get from cache.
	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var candidates []models.ScoredCandidate
			if err := json.Unmarshal([]byte(cached), &candidates); err == nil {
				return candidates, nil
			}
			// If unmarshal fails, we fall through to re-computation.
		}
	}

	providers, err := s.ProviderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}

	candidates := RankCandidates(origin, providers, prefs)

	if s.CacheClient != nil {
		if candidateBytes, err := json.Marshal(candidates); err == nil {
			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = 5 * time.Minute
			}
			s.CacheClient.Set(ctx, cacheKey, candidateBytes, ttl)
		}
	}

	return candidates, nil
}
