package store

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each watchlist as a Redis set under prefix+session.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend connects to redisURL (redis://host:port/db) and checks
// the connection.
func NewRedisBackend(ctx context.Context, redisURL, prefix string) (*RedisBackend, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return NewRedisBackendFromClient(client, prefix), nil
}

// NewRedisBackendFromClient wraps an existing client.
func NewRedisBackendFromClient(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) key(session string) string {
	return r.prefix + session
}

func (r *RedisBackend) Add(ctx context.Context, session, id string) (bool, error) {
	n, err := r.client.SAdd(ctx, r.key(session), id).Result()
	return n > 0, err
}

func (r *RedisBackend) Remove(ctx context.Context, session, id string) (bool, error) {
	n, err := r.client.SRem(ctx, r.key(session), id).Result()
	return n > 0, err
}

func (r *RedisBackend) Has(ctx context.Context, session, id string) (bool, error) {
	return r.client.SIsMember(ctx, r.key(session), id).Result()
}

func (r *RedisBackend) Count(ctx context.Context, session string) (int, error) {
	n, err := r.client.SCard(ctx, r.key(session)).Result()
	return int(n), err
}

func (r *RedisBackend) Items(ctx context.Context, session string) ([]string, error) {
	items, err := r.client.SMembers(ctx, r.key(session)).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(items)
	return items, nil
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
