package enricher

import (
	"context"
	"log/slog"
	"strconv"

	"jobSeniority/internal/pkg/metrics"
	"jobSeniority/internal/ports"
)

// KeyCache — типизированная обёртка над ports.ICache: уровень сеньорности по ключу "company:title".
// Ошибки кэша не фатальны: при чтении это промах, при записи ошибка возвращается только для отчёта.
type KeyCache struct {
	cache ports.ICache
	log   *slog.Logger
}

// NewKeyCache создаёт KeyCache поверх клиента кэша.
func NewKeyCache(cache ports.ICache, log *slog.Logger) *KeyCache {
	return &KeyCache{cache: cache, log: log}
}

// Get возвращает уровень по ключу. found == false и при отсутствии ключа, и при недоступном кэше,
// и при значении, которое не парсится в число.
func (c *KeyCache) Get(ctx context.Context, key string) (level int, found bool) {
	s, found, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache get failed, treating as miss", "key", key, "error", err)
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return 0, false
	}
	if !found {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return 0, false
	}
	level, err = strconv.Atoi(s)
	if err != nil {
		c.log.Warn("cache value is not a level, treating as miss", "key", key, "value", s)
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return 0, false
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return level, true
}

// Set перезаписывает уровень по ключу. Повторная запись того же значения безопасна.
func (c *KeyCache) Set(ctx context.Context, key string, level int) error {
	return c.cache.Set(ctx, key, strconv.Itoa(level))
}
