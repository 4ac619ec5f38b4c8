package optout

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// defaultRedisKey is the set holding unsubscribed addresses.
const defaultRedisKey = "optout:emails"

// Redis is a Store backed by a Redis set, for deployments where several
// processes share one opt-out list.
type Redis struct {
	client redis.UniversalClient
	key    string
}

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithRedisKey overrides the set key. Default: "optout:emails".
func WithRedisKey(key string) RedisOption {
	return func(r *Redis) {
		r.key = key
	}
}

// NewRedis creates a Redis-backed store on an existing client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{client: client, key: defaultRedisKey}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsUnsubscribed implements Store.
func (r *Redis) IsUnsubscribed(ctx context.Context, email string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key, Normalize(email)).Result()
	if err != nil {
		return false, errors.Join(ErrStoreUnavailable, err)
	}
	return ok, nil
}

// Add implements Store.
func (r *Redis) Add(ctx context.Context, email string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if err := r.client.SAdd(ctx, r.key, Normalize(email)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Remove implements Store.
func (r *Redis) Remove(ctx context.Context, email string) error {
	if err := r.client.SRem(ctx, r.key, Normalize(email)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
