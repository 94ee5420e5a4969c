package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-catalog-admin/internal/config"
	"go-catalog-admin/internal/model"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyAttributeGroups = "catalog:attribute_groups"
	opTimeout          = 250 * time.Millisecond
)

// AttributeCache stores the attribute group listing the combination screen
// reads on every open. Misses and backend errors both fall through to the
// database.
type AttributeCache interface {
	GetGroups() ([]model.AttributeGroup, bool)
	SetGroups(groups []model.AttributeGroup)
	Invalidate()
}

// NewAttributeCache returns a redis backed cache when an address is
// configured and a no-op cache otherwise.
func NewAttributeCache(cfg config.RedisConfig, log *zap.Logger) AttributeCache {
	if !cfg.Enabled() {
		return noopCache{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: opTimeout,
		MaxRetries:  0,
	})
	return &redisAttributeCache{client: client, ttl: cfg.TTL, log: log.Named("cache")}
}

type noopCache struct{}

func (noopCache) GetGroups() ([]model.AttributeGroup, bool) { return nil, false }
func (noopCache) SetGroups([]model.AttributeGroup) {}
func (noopCache) Invalidate() {}

type redisAttributeCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func (c *redisAttributeCache) GetGroups() ([]model.AttributeGroup, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, keyAttributeGroups).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("attribute cache get", zap.Error(err))
		}
		return nil, false
	}

	var groups []model.AttributeGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		c.log.Warn("attribute cache decode", zap.Error(err))
		return nil, false
	}
	return groups, true
}

func (c *redisAttributeCache) SetGroups(groups []model.AttributeGroup) {
	raw, err := json.Marshal(groups)
	if err != nil {
		c.log.Warn("attribute cache encode", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := c.client.Set(ctx, keyAttributeGroups, raw, c.ttl).Err(); err != nil {
		c.log.Warn("attribute cache set", zap.Error(err))
	}
}

func (c *redisAttributeCache) Invalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := c.client.Del(ctx, keyAttributeGroups).Err(); err != nil {
		c.log.Warn("attribute cache invalidate", zap.Error(err))
	}
}
