package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *goredis.Client

/*
* Open the client and ping it
* Sets the package Rdb
 */
func Connect(ctx context.Context, addr, password string, db int) error {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return err
	}
	Rdb = client
	log.Info().Str("addr", addr).Msg("Redis connection successfully opened")
	return nil
}

func Close() error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Close()
}

// Cache stores JSON values; a Cache with a nil client is a no-op.
type Cache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewCache(client *goredis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) SetCache(ctx context.Context, key string, value interface{}) error {
	if !c.Enabled() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

/*
* Decode the cached value into dest
* found is false on a miss or when the cache is disabled
 */
func (c *Cache) GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) DeleteCache(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
