package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/avc-dev/shortlinks/internal/events"
	"github.com/avc-dev/shortlinks/internal/handler"
	"github.com/avc-dev/shortlinks/internal/metrics"
	"github.com/avc-dev/shortlinks/internal/migrations"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/avc-dev/shortlinks/internal/telemetry"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const serviceName = "shortlinks"

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) error {
	metrics.Init()

	shutdown, err := telemetry.Init(ctx, a.config.OTLPEndpoint, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	a.shutdownTelemetry = shutdown

	storage, err := a.initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	publisher, err := initPublisher(a.config, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize event publisher: %w", err)
	}
	a.publisher = publisher

	if a.config.Events.Consume && a.config.Events.Driver == config.EventsDriverKafka {
		a.startConsumer(ctx)
	}

	repo := repository.New(storage)
	a.usecase = usecase.NewLinkUsecase(repo, service.NewCodeGenerator(), publisher, a.config, a.logger)

	a.clicks = service.NewClickProcessor(a.config.Clicks.Workers, a.config.Clicks.QueueSize, a.logger)
	a.clicks.Start(ctx, a.usecase.IncrementClicks)
	a.usecase.SetClickScheduler(a.clicks)

	a.handler = handler.New(a.usecase, a.logger, a.dbPool, a.config.BaseURL.String())

	return nil
}

// initStorage создает хранилище на основе конфигурации.
// Приоритет: PostgreSQL, затем файл, затем память. Redis кэширует любое из них.
func (a *App) initStorage(ctx context.Context) (repository.Store, error) {
	base, err := a.initBaseStorage(ctx)
	if err != nil {
		return nil, err
	}

	if a.config.Redis.Addr == "" {
		return base, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.config.Redis.Addr,
		Password: a.config.Redis.Password,
		DB:       a.config.Redis.DB,
	})
	a.redis = client

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		a.logger.Warn("redis is unavailable, cache lookups will fall through",
			zap.String("addr", a.config.Redis.Addr),
			zap.Error(err),
		)
	}

	a.logger.Info("Using redis link cache",
		zap.String("addr", a.config.Redis.Addr),
		zap.Duration("ttl", a.config.Redis.TTL),
	)
	return store.NewCachedStore(base, client, a.config.Redis.TTL, a.logger), nil
}

func (a *App) initBaseStorage(ctx context.Context) (store.LinkStore, error) {
	if a.config.DatabaseDSN != "" {
		database, err := db.NewConfig(a.config.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.dbPool = database

		if err := migrations.NewMigrator(database.DB(), a.logger).RunUp(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		a.logger.Info("Using database storage")
		return store.NewDatabaseStore(database), nil
	}

	if a.config.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(a.config.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		a.logger.Info("Using file storage", zap.String("path", a.config.FileStoragePath))
		return fileStore, nil
	}

	a.logger.Info("Using in-memory storage")
	return store.NewStore(), nil
}

// initPublisher выбирает публикатор событий по драйверу из конфигурации
func initPublisher(cfg *config.Config, logger *zap.Logger) (events.Publisher, error) {
	switch cfg.Events.Driver {
	case config.EventsDriverLog:
		logger.Info("Publishing events to log")
		return events.NewLogPublisher(logger), nil
	case config.EventsDriverKafka:
		logger.Info("Publishing events to kafka",
			zap.Strings("brokers", cfg.Events.KafkaBrokers),
			zap.String("topic", cfg.Events.KafkaTopic),
		)
		return events.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.KafkaTopic), nil
	case config.EventsDriverRabbitMQ:
		publisher, err := events.NewRabbitPublisher(cfg.Events.RabbitURL, cfg.Events.RabbitExchange)
		if err != nil {
			return nil, err
		}
		logger.Info("Publishing events to rabbitmq", zap.String("exchange", cfg.Events.RabbitExchange))
		return publisher, nil
	default:
		return events.NopPublisher{}, nil
	}
}

// startConsumer читает опубликованные события и пишет их в лог
func (a *App) startConsumer(ctx context.Context) {
	a.consumer = events.NewKafkaConsumer(
		a.config.Events.KafkaBrokers,
		a.config.Events.KafkaTopic,
		a.config.Events.KafkaGroupID,
		a.logger,
	)

	consumerCtx, cancel := context.WithCancel(ctx)
	a.stopConsumer = cancel

	a.consumerDone.Add(1)
	go func() {
		defer a.consumerDone.Done()
		a.consumer.Run(consumerCtx)
	}()

	a.logger.Info("Consuming events from kafka", zap.String("group_id", a.config.Events.KafkaGroupID))
}
