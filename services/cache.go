package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/jabbate19/devcade-api/models"
)

const listingCacheKey = "games:listing"
const listingCacheTTL = 30 * time.Second

// ListingCache is an optional redis-backed cache of the full game listing, the
// most expensive read (three-way join). A nil *ListingCache is a valid no-op
// cache. Cache failures are logged and treated as misses; redis is never on
// the request's critical path.
type ListingCache struct {
	client *redis.Client
}

func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get returns the cached listing and whether it was present.
func (c *ListingCache) Get(ctx context.Context) ([]*models.Game, bool) {
	if c == nil {
		return nil, false
	}

	b, err := c.client.Get(ctx, listingCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("game listing cache read failed")
		}
		return nil, false
	}

	var games []*models.Game
	if err := json.Unmarshal(b, &games); err != nil {
		log.Warn().Err(err).Msg("game listing cache held malformed payload")
		return nil, false
	}
	return games, true
}

// Set stores the listing with a short TTL.
func (c *ListingCache) Set(ctx context.Context, games []*models.Game) {
	if c == nil {
		return
	}

	b, err := json.Marshal(games)
	if err != nil {
		log.Warn().Err(err).Msg("failed to serialize game listing for cache")
		return
	}
	if err := c.client.SetEX(ctx, listingCacheKey, b, listingCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("game listing cache write failed")
	}
}

// Invalidate drops the cached listing. Called after every game mutation.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, listingCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("game listing cache invalidation failed")
	}
}
