// Package cache keeps hot reads in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	publicationKeyPrefix = "publication:"
	defaultTTL           = 10 * time.Minute
)

func publicationKey(id uint) string {
	return publicationKeyPrefix + strconv.FormatUint(uint64(id), 10)
}

type redisPublicationCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisPublicationCache wraps a Redis client.
func NewRedisPublicationCache(client redis.Cmdable, ttl time.Duration) service.PublicationCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisPublicationCache{client: client, ttl: ttl}
}

func (c *redisPublicationCache) Get(ctx context.Context, id uint) (*entity.Publication, error) {
	data, err := c.client.Get(ctx, publicationKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get publication")
	}

	var publication entity.Publication
	if err := json.Unmarshal(data, &publication); err != nil {
		return nil, errors.Wrap(err, "decode cached publication")
	}

	return &publication, nil
}

func (c *redisPublicationCache) Set(ctx context.Context, publication *entity.Publication) error {
	data, err := json.Marshal(publication)
	if err != nil {
		return errors.Wrap(err, "encode publication")
	}

	return errors.Wrap(c.client.Set(ctx, publicationKey(publication.ID), data, c.ttl).Err(), "redis set publication")
}

func (c *redisPublicationCache) Delete(ctx context.Context, id uint) error {
	return errors.Wrap(c.client.Del(ctx, publicationKey(id)).Err(), "redis delete publication")
}

// noopPublicationCache always misses.
type noopPublicationCache struct{}

func (noopPublicationCache) Get(context.Context, uint) (*entity.Publication, error) { return nil, nil }
func (noopPublicationCache) Set(context.Context, *entity.Publication) error         { return nil }
func (noopPublicationCache) Delete(context.Context, uint) error                     { return nil }

// Params holds dependencies for PublicationCache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPublicationCache connects to Redis when configured and falls back to a no-op cache otherwise.
func NewPublicationCache(params Params) service.PublicationCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, publication cache disabled")

		return noopPublicationCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using Redis publication cache", slog.String("addr", cfg.Addr))

	return NewRedisPublicationCache(client, cfg.TTL)
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPublicationCache),
)
