// Package testutil поднимает инфраструктуру для интеграционных тестов в Docker (testcontainers).
// Каждый контейнер останавливается через t.Cleanup; в режиме -short тесты пропускаются.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 2 * time.Minute

// SkipIfShort пропускает интеграционный тест в режиме go test -short.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
}

func terminate(t *testing.T, c testcontainers.Container) {
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("остановка контейнера: %v", err)
		}
	})
}

// PostgresContainer — параметры подключения к PostgreSQL в Docker.
type PostgresContainer struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// NewPostgresContainer поднимает PostgreSQL и возвращает параметры подключения.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	SkipIfShort(t)

	const (
		user     = "test"
		password = "test"
		dbName   = "testdb"
	)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("postgres container: %v", err)
	}
	terminate(t, container)

	host, port := endpoint(ctx, t, container, "5432")
	return &PostgresContainer{Host: host, Port: port, User: user, Password: password, DBName: dbName}
}

// DSN возвращает строку подключения для lib/pq.
func (c *PostgresContainer) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

// RedisContainer — параметры подключения к Redis в Docker.
type RedisContainer struct {
	Host string
	Port string
}

// NewRedisContainer поднимает Redis и возвращает параметры подключения.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()
	SkipIfShort(t)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("redis container: %v", err)
	}
	terminate(t, container)

	host, port := endpoint(ctx, t, container, "6379")
	return &RedisContainer{Host: host, Port: port}
}

// MongoContainer — параметры подключения к MongoDB в Docker.
type MongoContainer struct {
	Host string
	Port string
}

// NewMongoContainer поднимает MongoDB и возвращает параметры подключения.
func NewMongoContainer(t *testing.T) *MongoContainer {
	t.Helper()
	SkipIfShort(t)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("mongo container: %v", err)
	}
	terminate(t, container)

	host, port := endpoint(ctx, t, container, "27017")
	return &MongoContainer{Host: host, Port: port}
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.Host, c.Port)
}

// ClickHouseContainer — параметры подключения к ClickHouse в Docker (нативный протокол).
type ClickHouseContainer struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// NewClickHouseContainer поднимает ClickHouse и возвращает параметры подключения.
func NewClickHouseContainer(t *testing.T) *ClickHouseContainer {
	t.Helper()
	SkipIfShort(t)

	const (
		user     = "default"
		password = ""
		database = "default"
	)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername(user),
		clickhouse.WithPassword(password),
		clickhouse.WithDatabase(database),
	)
	if err != nil {
		t.Fatalf("clickhouse container: %v", err)
	}
	terminate(t, container)

	host, port := endpoint(ctx, t, container, "9000")
	return &ClickHouseContainer{Host: host, Port: port, User: user, Password: password, Database: database}
}

func endpoint(ctx context.Context, t *testing.T, c testcontainers.Container, port nat.Port) (string, string) {
	t.Helper()
	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		t.Fatalf("container port %s: %v", port, err)
	}
	return host, mapped.Port()
}
