package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/MuhammedMazinMH/FundFeed/internal/config"
	"github.com/redis/go-redis/v9"
)

// Cache 趋势榜缓存，挂掉或未启用时调用方直接回源查库
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// Init 按配置初始化 redis 客户端，未启用时返回 nil
func Init(cfg config.RedisConfig) (*Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := time.Duration(cfg.TrendingTTL) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// GetTrending 读取缓存的趋势榜 JSON，未命中返回空串
func (c *Cache) GetTrending(ctx context.Context, limit int) (string, error) {
	val, err := c.client.Get(ctx, trendingKey(limit)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// SetTrending 写入趋势榜 JSON，带 TTL
func (c *Cache) SetTrending(ctx context.Context, limit int, payload string) error {
	return c.client.Set(ctx, trendingKey(limit), payload, c.ttl).Err()
}

// InvalidateTrending 清除全部趋势榜缓存键
func (c *Cache) InvalidateTrending(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "trending:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close 关闭连接
func (c *Cache) Close() error {
	return c.client.Close()
}

func trendingKey(limit int) string {
	return fmt.Sprintf("trending:%d", limit)
}
