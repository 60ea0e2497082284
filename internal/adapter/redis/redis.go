package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (a *RedisAdapter) Get(key string) ([]byte, error) {
	return a.client.Get(context.Background(), key).Bytes()
}

func (a *RedisAdapter) Set(key string, value []byte, ttl time.Duration) error {
	return a.client.Set(context.Background(), key, value, ttl).Err()
}

func (a *RedisAdapter) Delete(key string) error {
	return a.client.Del(context.Background(), key).Err()
}

// DeleteByPrefix drops every cached page of a resource after a confirmed
// mutation.
func (a *RedisAdapter) DeleteByPrefix(prefix string) error {
	ctx := context.Background()
	iter := a.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := a.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
