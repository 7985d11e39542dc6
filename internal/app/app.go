package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/avc-dev/shortlinks/internal/events"
	"github.com/avc-dev/shortlinks/internal/handler"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/telemetry"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App представляет приложение URL shortener
type App struct {
	config    *config.Config
	logger    *zap.Logger
	dbPool    db.Database
	redis     redis.UniversalClient
	usecase   *usecase.LinkUsecase
	clicks    *service.ClickProcessor
	publisher events.Publisher
	consumer  *events.KafkaConsumer
	handler   *handler.Handler

	shutdownTelemetry telemetry.ShutdownFunc
	stopConsumer      context.CancelFunc
	consumerDone      sync.WaitGroup
	closeOnce         sync.Once
}

// New создает приложение и все его зависимости
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{
		config: cfg,
		logger: logger,
	}

	if err := a.initDependencies(ctx); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// Run загружает конфигурацию, запускает приложение и ждёт сигнала остановки
func Run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		// Sync на stderr возвращает EINVAL, это не ошибка
		if err := logger.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
			fmt.Fprintf(os.Stderr, "failed to sync logger: %v\n", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает ресурсы в порядке, обратном созданию.
// Очередь переходов дренируется до закрытия публикатора и базы.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.clicks != nil {
			a.clicks.Stop()
		}
		if a.usecase != nil {
			a.usecase.Wait()
		}

		if a.stopConsumer != nil {
			a.stopConsumer()
			a.consumerDone.Wait()
		}
		if a.consumer != nil {
			if err := a.consumer.Close(); err != nil {
				a.logger.Warn("failed to close event consumer", zap.Error(err))
			}
		}

		if a.publisher != nil {
			if err := a.publisher.Close(); err != nil {
				a.logger.Warn("failed to close event publisher", zap.Error(err))
			}
		}

		if a.redis != nil {
			if err := a.redis.Close(); err != nil {
				a.logger.Warn("failed to close redis client", zap.Error(err))
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("Database connection closed")
		}

		if a.shutdownTelemetry != nil {
			ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
			defer cancel()
			if err := a.shutdownTelemetry(ctx); err != nil {
				a.logger.Warn("failed to shutdown telemetry", zap.Error(err))
			}
		}
	})
}
