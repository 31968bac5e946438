package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"fibCalc/internal/api/http"
	"fibCalc/internal/infrastructure/click"
	"fibCalc/internal/infrastructure/kafka"
	"fibCalc/internal/infrastructure/mongo"
	"fibCalc/internal/infrastructure/pg"
	"fibCalc/internal/pkg/logger"
	"fibCalc/internal/usecase/fibonacci"
)

const AppName = "FIBONACCI"

// Хранилища истории.
const (
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
	StorageNone     = "none"
)

// Config — конфиг приложения. Заполняется через envconfig с префиксом FIBONACCI.
type Config struct {
	Storage    string            `default:"postgres"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	Log        logger.Config     `envconfig:"LOG"`
	Limits     fibonacci.Limits  `envconfig:"LIMITS"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// Validate проверяет значения, которые envconfig не проверяет сам.
func (c *Config) Validate() error {
	switch c.Storage {
	case StoragePostgres, StorageMongo, StorageNone:
	default:
		return fmt.Errorf("unknown storage %q (want %s, %s or %s)", c.Storage, StoragePostgres, StorageMongo, StorageNone)
	}
	if c.ClickHouse.Enabled && !c.Kafka.Enabled {
		return fmt.Errorf("clickhouse analytics is fed from kafka: enable %s_KAFKA_ENABLED", AppName)
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Путь к .env — FIBONACCI_ENV_FILE, по умолчанию ".env" в рабочей директории.
func LoadCfg() (Config, error) {
	envFile := os.Getenv(AppName + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("config: .env not found, using environment", "file", envFile, "error", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
