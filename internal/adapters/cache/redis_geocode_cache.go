package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"installation-route-service/internal/domain"
)

const geocodeKeyPrefix = "geocode:"

// Redis-backed cache mapping normalized addresses to coordinates.
// This sits between the per-run memo and the external geocoder, so
// repeated runs over the same client base avoid re-geocoding even when
// the order-row writeback has not landed yet.
type RedisGeocodeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGeocodeCache(rdb *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{rdb: rdb, ttl: ttl}
}

type cachedCoordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func (c *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if c.rdb == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: redis client is nil")
	}

	var v cachedCoordinates
	raw, err := c.rdb.Get(ctx, geocodeKeyPrefix+address).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Coordinates{}, false, nil
		}
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache addr=%q: %w", address, err)
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache addr=%q: %w", address, err)
	}

	return domain.Coordinates{Lon: v.Lon, Lat: v.Lat}, true, nil
}

func (c *RedisGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	if c.rdb == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	raw, err := json.Marshal(cachedCoordinates{Lon: coords.Lon, Lat: coords.Lat})
	if err != nil {
		return fmt.Errorf("put geocode cache addr=%q: %w", address, err)
	}

	if err := c.rdb.Set(ctx, geocodeKeyPrefix+address, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put geocode cache addr=%q: %w", address, err)
	}

	return nil
}
