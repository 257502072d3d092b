package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"jobSeniority/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis. Ключ — "company:title", значение — уровень строкой.
// Срок жизни не задаётся: вытеснение настраивается на стороне Redis (maxmemory-policy).
type Cache struct {
	cli *Client
	log *slog.Logger
}

// NewCache возвращает кэш, реализующий ports.ICache.
func NewCache(cli *Client, log *slog.Logger) *Cache {
	return &Cache{cli: cli, log: log}
}

// Get возвращает значение по ключу. Если ключа нет — found == false без ошибки.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	s, err := c.cli.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return "", false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return "", false, err
	}
	return s, true, nil
}

// Set сохраняет значение по ключу. Существующее значение перезаписывается.
func (c *Cache) Set(ctx context.Context, key string, value string) error {
	if err := c.cli.Set(ctx, key, value, 0).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет соединение (для readiness).
func (c *Cache) Ping(ctx context.Context) error {
	return c.cli.Ping(ctx)
}
