package redis

import (
	"context"
	"encoding/json"
	"time"
)

// Cache provides JSON value caching on top of a Client.
type Cache struct {
	client *Client
	ttl    time.Duration
}

// NewCache creates a cache with the given TTL. A zero TTL keeps entries forever.
func NewCache(client *Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetJSON retrieves a cached JSON value into dest. Missing keys return ErrNotFound.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	data, err := c.client.GetBytes(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Ping tests the connection of the underlying client.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx)
}

// SetJSON stores a value as JSON under the given key.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.SetBytes(ctx, key, data, c.ttl)
}
