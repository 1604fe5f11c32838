package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/redis/go-redis/v9"
)

const propertyCacheTTL = 1 * time.Hour

type PropertyCache struct {
	client *redis.Client
}

func NewPropertyCache(addr string) (*PropertyCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &PropertyCache{client: client}, nil
}

func cacheKey(id string) string {
	return "property:" + id
}

// Get returns (nil, nil) on a cache miss.
func (c *PropertyCache) Get(ctx context.Context, id string) (*domain.Property, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var property domain.Property
	if err := json.Unmarshal(data, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *PropertyCache) Set(ctx context.Context, property *domain.Property) error {
	data, err := json.Marshal(property)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(property.ID), data, propertyCacheTTL).Err()
}

func (c *PropertyCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, cacheKey(id)).Err()
}
