package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avc-dev/shortlinks/internal/metrics"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const codeKeyPrefix = "sl:code:"

// LinkStore набор операций хранилища ссылок, который оборачивает CachedStore
type LinkStore interface {
	Save(ctx context.Context, link model.ShortLink) (model.ShortLink, error)
	FindByCode(ctx context.Context, code model.Code) (model.ShortLink, error)
	FindByID(ctx context.Context, id string) (model.ShortLink, error)
	DeleteByID(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]model.ShortLink, error)
}

// CachedStore read-through кэш в Redis поверх другого хранилища.
// Запись и удаление инвалидируют кэш; ошибки Redis только логируются.
type CachedStore struct {
	next   LinkStore
	client redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedStore создает CachedStore
func NewCachedStore(next LinkStore, client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *CachedStore {
	return &CachedStore{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedStore) Save(ctx context.Context, link model.ShortLink) (model.ShortLink, error) {
	saved, err := c.next.Save(ctx, link)
	if err != nil {
		return model.ShortLink{}, err
	}

	c.invalidate(ctx, saved.ID, saved.ShortCode)

	return saved, nil
}

func (c *CachedStore) FindByCode(ctx context.Context, code model.Code) (model.ShortLink, error) {
	data, err := c.client.Get(ctx, codeKeyPrefix+string(code)).Bytes()
	switch {
	case err == nil:
		var link model.ShortLink
		if err := json.Unmarshal(data, &link); err == nil {
			metrics.CacheOperations.WithLabelValues("hit").Inc()
			return link, nil
		}
		c.logger.Warn("failed to decode cached link", zap.String("code", string(code)), zap.Error(err))
	case errors.Is(err, redis.Nil):
		metrics.CacheOperations.WithLabelValues("miss").Inc()
	default:
		metrics.CacheOperations.WithLabelValues("error").Inc()
		c.logger.Warn("failed to read link from cache", zap.String("code", string(code)), zap.Error(err))
	}

	link, err := c.next.FindByCode(ctx, code)
	if err != nil {
		return model.ShortLink{}, err
	}

	c.put(ctx, link)

	return link, nil
}

// DeleteByID берёт код ссылки из основного хранилища, а не из кэша,
// чтобы инвалидация не зависела от доступности Redis
func (c *CachedStore) DeleteByID(ctx context.Context, id string) error {
	link, err := c.next.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := c.next.DeleteByID(ctx, id); err != nil {
		return err
	}

	c.invalidate(ctx, id, link.ShortCode)

	return nil
}

func (c *CachedStore) FindByID(ctx context.Context, id string) (model.ShortLink, error) {
	return c.next.FindByID(ctx, id)
}

func (c *CachedStore) FindAll(ctx context.Context) ([]model.ShortLink, error) {
	return c.next.FindAll(ctx)
}

func (c *CachedStore) put(ctx context.Context, link model.ShortLink) {
	data, err := json.Marshal(link)
	if err != nil {
		c.logger.Warn("failed to encode link for cache", zap.String("code", string(link.ShortCode)), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, codeKeyPrefix+string(link.ShortCode), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache link", zap.String("code", string(link.ShortCode)), zap.Error(err))
	}
}

func (c *CachedStore) invalidate(ctx context.Context, id string, code model.Code) {
	if err := c.client.Del(ctx, codeKeyPrefix+string(code)).Err(); err != nil {
		c.logger.Error("failed to invalidate cached link",
			zap.String("id", id),
			zap.String("code", string(code)),
			zap.Error(err),
		)
	}
}
