package cache

import (
	"testing"

	"go-catalog-admin/internal/config"
	"go-catalog-admin/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNoopWhenRedisDisabled(t *testing.T) {
	c := NewAttributeCache(config.RedisConfig{}, nil)
	_, isNoop := c.(noopCache)
	assert.True(t, isNoop)

	c.SetGroups([]model.AttributeGroup{{Name: "Color"}})
	_, ok := c.GetGroups()
	assert.False(t, ok)
	assert.NotPanics(t, c.Invalidate)
}

func TestUnreachableRedisFallsThrough(t *testing.T) {
	// nothing listens on port 1, every call fails fast and reports a miss
	c := NewAttributeCache(config.RedisConfig{Addr: "127.0.0.1:1"}, nil)
	_, isRedis := c.(*redisAttributeCache)
	assert.True(t, isRedis)

	c.SetGroups([]model.AttributeGroup{{Name: "Color"}})
	_, ok := c.GetGroups()
	assert.False(t, ok)
	assert.NotPanics(t, c.Invalidate)
}
