package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "fibCalc/internal/api/http"
	fibController "fibCalc/internal/api/http/controllers/fibonacci"
	"fibCalc/internal/api/http/controllers/system"
	"fibCalc/internal/infrastructure/click"
	"fibCalc/internal/infrastructure/kafka"
	"fibCalc/internal/infrastructure/mongo"
	"fibCalc/internal/infrastructure/pg"
	"fibCalc/internal/pkg/logger"
	"fibCalc/internal/ports"
	fibUsecase "fibCalc/internal/usecase/fibonacci"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (хранилища подключаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилище истории, Kafka и ClickHouse (если включены) и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		repo      ports.ICalculationRepository
		broker    ports.IProducer
		analytics ports.ICalculationAnalytics
		pingers   []system.Pinger
	)

	switch a.cfg.Storage {
	case StoragePostgres:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		defer db.Close()
		if err := pg.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		pgRepo := pg.NewCalculationRepo(db, log)
		repo = pgRepo
		pingers = append(pingers, pgRepo)
	case StorageMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
		defer cli.Close()
		mongoRepo := mongo.NewCalculationRepo(cli, log)
		repo = mongoRepo
		pingers = append(pingers, mongoRepo)
	case StorageNone:
		log.Warn("history storage disabled")
	}

	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		defer producer.Close()
		broker = producer
	}

	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(&a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		writer := click.NewCalculationWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse table: %w", err)
		}
		analytics = writer
	}

	uc := fibUsecase.New(repo, broker, analytics, a.cfg.Limits, log)

	if analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server, log)
	srv.AddController(
		system.New(log, pingers...),
		fibController.New(uc, log))

	log.Info("application started",
		"http", a.cfg.Server.Addr(),
		"storage", a.cfg.Storage,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled)

	return srv.Start(ctx)
}
