package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/probook/probook-api/internal/core"
	apperrors "github.com/probook/probook-api/internal/errors"
)

const intentKeyPrefix = "payment:intent:"

// RedisIntentCache stores quoted payment intents in Redis until they are
// applied or their TTL lapses.
type RedisIntentCache struct {
	client redis.UniversalClient
}

// NewRedisIntentCache creates a new RedisIntentCache with the given client.
func NewRedisIntentCache(client redis.UniversalClient) *RedisIntentCache {
	return &RedisIntentCache{client: client}
}

// Put stores a quoted intent under the handle with the given TTL.
func (r *RedisIntentCache) Put(
	ctx context.Context,
	handle string,
	intent core.QuotedIntent,
	ttl time.Duration,
) error {
	if handle == "" {
		return errors.New("handle cannot be empty")
	}
	payload, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("marshal intent: %w", err)
	}
	if err := r.client.Set(ctx, intentKeyPrefix+handle, payload, ttl).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "store payment intent")
	}
	return nil
}

// Get retrieves a quoted intent by handle, or nil when the handle is
// unknown or expired.
func (r *RedisIntentCache) Get(ctx context.Context, handle string) (*core.QuotedIntent, error) {
	if handle == "" {
		return nil, errors.New("handle cannot be empty")
	}
	payload, err := r.client.Get(ctx, intentKeyPrefix+handle).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "load payment intent")
	}
	var intent core.QuotedIntent
	if err := json.Unmarshal([]byte(payload), &intent); err != nil {
		return nil, fmt.Errorf("unmarshal intent: %w", err)
	}
	return &intent, nil
}

// Delete removes a handle after the intent is applied.
func (r *RedisIntentCache) Delete(ctx context.Context, handle string) error {
	if handle == "" {
		return errors.New("handle cannot be empty")
	}
	if err := r.client.Del(ctx, intentKeyPrefix+handle).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "delete payment intent")
	}
	return nil
}

// dispatchChannel is the pub/sub channel the dispatch runner subscribes to.
const dispatchChannel = "dispatch:wake"

// RedisWaker nudges the dispatch runner over Redis pub/sub after a job is
// created. Delivery is best effort; the runner's poll ticker is the
// fallback.
type RedisWaker struct {
	client redis.UniversalClient
}

// NewRedisWaker creates a new RedisWaker with the given client.
func NewRedisWaker(client redis.UniversalClient) *RedisWaker {
	return &RedisWaker{client: client}
}

// Wake publishes a wake-up to the dispatch channel.
func (r *RedisWaker) Wake(ctx context.Context) error {
	if err := r.client.Publish(ctx, dispatchChannel, "wake").Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "publish dispatch wake")
	}
	return nil
}

// Subscribe opens a subscription on the dispatch channel. The caller owns
// the returned PubSub and must close it.
func (r *RedisWaker) Subscribe(ctx context.Context) *redis.PubSub {
	return r.client.Subscribe(ctx, dispatchChannel)
}
