// Package testutil содержит хелперы для интеграционных тестов: поднимает PostgreSQL, MongoDB и ClickHouse
// через testcontainers. Тест пропускается в -short режиме и когда Docker недоступен.
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
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 2 * time.Minute

// skipShort пропускает интеграционный тест в short режиме.
func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
}

// terminateOnCleanup останавливает контейнер после теста.
func terminateOnCleanup(t *testing.T, c testcontainers.Container) {
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})
}

// =============================================================================
// PostgreSQL
// =============================================================================

// PostgresContainer — параметры подключения к тестовому PostgreSQL.
type PostgresContainer struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// StartPostgres поднимает PostgreSQL в Docker на время теста.
func StartPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	skipShort(t)

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
		t.Skipf("postgres container недоступен: %v", err)
	}
	terminateOnCleanup(t, container)

	host, port, err := endpoint(ctx, container, "5432")
	if err != nil {
		t.Fatalf("postgres endpoint: %v", err)
	}

	return &PostgresContainer{Host: host, Port: port, User: user, Password: password, DBName: dbName}
}

// =============================================================================
// MongoDB
// =============================================================================

// MongoContainer — параметры подключения к тестовой MongoDB.
type MongoContainer struct {
	Host string
	Port string
}

// StartMongo поднимает MongoDB в Docker на время теста.
func StartMongo(t *testing.T) *MongoContainer {
	t.Helper()
	skipShort(t)

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
		t.Skipf("mongo container недоступен: %v", err)
	}
	terminateOnCleanup(t, container)

	host, port, err := endpoint(ctx, container, "27017")
	if err != nil {
		t.Fatalf("mongo endpoint: %v", err)
	}

	return &MongoContainer{Host: host, Port: port}
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.Host, c.Port)
}

// =============================================================================
// ClickHouse
// =============================================================================

// ClickHouseContainer — параметры подключения к тестовому ClickHouse.
type ClickHouseContainer struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// StartClickHouse поднимает ClickHouse в Docker на время теста.
func StartClickHouse(t *testing.T) *ClickHouseContainer {
	t.Helper()
	skipShort(t)

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
		t.Skipf("clickhouse container недоступен: %v", err)
	}
	terminateOnCleanup(t, container)

	// Нативный порт ClickHouse
	host, port, err := endpoint(ctx, container, "9000")
	if err != nil {
		t.Fatalf("clickhouse endpoint: %v", err)
	}

	return &ClickHouseContainer{Host: host, Port: port, User: user, Password: password, Database: database}
}

func endpoint(ctx context.Context, c testcontainers.Container, port nat.Port) (string, string, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return "", "", fmt.Errorf("host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return "", "", fmt.Errorf("port %s: %w", port, err)
	}
	return host, mapped.Port(), nil
}
