package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cortinaria/internal/domain/entities"
	"cortinaria/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	railTableCacheKey     = "pricing_config:rails"
	valanceCacheKey       = "pricing_config:valance"
	pricingConfigCacheTTL = 5 * time.Minute
)

// PricingConfigCache is a read-through cache in front of the pricing config
// repository. The config is read on every budget calculation but changes
// rarely; cache misses and redis errors fall through to the underlying
// repository, and writes invalidate the cached entry.

type PricingConfigCache struct {
	rdb  *redis.Client
	next interfaces.IPricingConfigRepository
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigCache)(nil)

func NewPricingConfigCache(rdb *redis.Client, next interfaces.IPricingConfigRepository) *PricingConfigCache {
	return &PricingConfigCache{rdb: rdb, next: next}
}

func (c *PricingConfigCache) GetRailTable(ctx context.Context) (entities.RailPricingTable, error) {
	if raw, err := c.rdb.Get(ctx, railTableCacheKey).Result(); err == nil {
		var table entities.RailPricingTable
		if err := json.Unmarshal([]byte(raw), &table); err == nil {
			return table, nil
		}
	}

	table, err := c.next.GetRailTable(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, railTableCacheKey, table)
	return table, nil
}

func (c *PricingConfigCache) PutRailTable(ctx context.Context, table entities.RailPricingTable) error {
	if err := c.next.PutRailTable(ctx, table); err != nil {
		return err
	}
	c.invalidate(ctx, railTableCacheKey)
	return nil
}

func (c *PricingConfigCache) GetValanceConfig(ctx context.Context) (entities.ValanceConfig, error) {
	if raw, err := c.rdb.Get(ctx, valanceCacheKey).Result(); err == nil {
		var cfg entities.ValanceConfig
		if err := json.Unmarshal([]byte(raw), &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg, err := c.next.GetValanceConfig(ctx)
	if err != nil {
		return entities.ValanceConfig{}, err
	}
	c.store(ctx, valanceCacheKey, cfg)
	return cfg, nil
}

func (c *PricingConfigCache) PutValanceConfig(ctx context.Context, cfg entities.ValanceConfig) error {
	if err := c.next.PutValanceConfig(ctx, cfg); err != nil {
		return err
	}
	c.invalidate(ctx, valanceCacheKey)
	return nil
}

func (c *PricingConfigCache) store(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, pricingConfigCacheTTL).Err(); err != nil {
		log.Printf("[config][cache] set failed key=%s err=%v", key, err)
	}
}

func (c *PricingConfigCache) invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("[config][cache] invalidate failed key=%s err=%v", key, err)
	}
}
