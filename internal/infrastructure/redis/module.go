package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Config — настройки подключения к Redis.
type Config struct {
	Host      string `envconfig:"HOST" default:"localhost"`
	Port      string `envconfig:"PORT" default:"6379"`
	Password  string `envconfig:"PASSWORD" default:""`
	DB        int    `envconfig:"DB" default:"0"`
	PoolSize  int    `envconfig:"POOL_SIZE" default:"0"`          // 0 — значение go-redis по умолчанию
	CursorKey string `envconfig:"CURSOR_KEY" default:"last_key"` // ключ курсора бакета
}

// Addr возвращает адрес "host:port".
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Client — обёртка над redis.Client. Безопасен для конкурентного использования из нескольких воркеров.
type Client struct {
	*redis.Client
}

// New подключается к Redis по конфигу и проверяет пингом.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{Client: cli}, nil
}

// Close закрывает соединение.
func (c *Client) Close() error {
	return c.Client.Close()
}

// Ping проверяет соединение (для readiness).
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
