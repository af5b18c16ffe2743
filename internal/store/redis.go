package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tatianab/text-adventure/internal/models"
)

// DefaultRedisPrefix is prepended to every adventure path to form its key.
const DefaultRedisPrefix = "adventure:"

// RedisStore keeps adventures as JSON documents in Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisStore connects to the Redis server at addr.
func NewRedisStore(addr, prefix string, logger *zap.Logger) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
		logger: logger,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("failed to close redis connection", zap.Error(err))
		return err
	}
	return nil
}

func (r *RedisStore) key(path string) string {
	return r.prefix + path
}

// Load reads the adventure stored under path. A missing key is replaced by
// an empty adventure, which is stored before returning.
func (r *RedisStore) Load(ctx context.Context, path string) (*models.Adventure, error) {
	data, err := r.client.Get(ctx, r.key(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		adv := models.NewAdventure("")
		if err := r.Save(ctx, path, adv); err != nil {
			return nil, fmt.Errorf("initializing adventure %s: %w", path, err)
		}
		r.logger.Info("created empty adventure", zap.String("key", r.key(path)))
		return adv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load adventure %s: %w", path, err)
	}

	var doc adventureDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal adventure %s: %w", path, err)
	}
	return doc.toModel(), nil
}

// Save stores adv under path with no expiry.
func (r *RedisStore) Save(ctx context.Context, path string, adv *models.Adventure) error {
	data, err := json.Marshal(newDocument(adv))
	if err != nil {
		return fmt.Errorf("failed to marshal adventure %s: %w", path, err)
	}
	if err := r.client.Set(ctx, r.key(path), data, 0).Err(); err != nil {
		r.logger.Error("failed to save adventure", zap.String("key", r.key(path)), zap.Error(err))
		return fmt.Errorf("failed to save adventure %s: %w", path, err)
	}
	return nil
}

// Delete removes the adventure stored under path.
func (r *RedisStore) Delete(ctx context.Context, path string) error {
	if err := r.client.Del(ctx, r.key(path)).Err(); err != nil {
		return fmt.Errorf("failed to delete adventure %s: %w", path, err)
	}
	return nil
}
