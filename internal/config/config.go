package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Драйверы публикации событий
const (
	EventsDriverNone     = "none"
	EventsDriverLog      = "log"
	EventsDriverKafka    = "kafka"
	EventsDriverRabbitMQ = "rabbitmq"
)

// Config содержит конфигурацию приложения
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	GRPCAddress     string         `env:"GRPC_ADDRESS"`
	OTLPEndpoint    string         `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`

	Redis  RedisConfig  `envPrefix:"REDIS_"`
	Retry  RetryConfig  `envPrefix:"RETRY_"`
	Clicks ClicksConfig `envPrefix:"CLICKS_"`
	Events EventsConfig `envPrefix:"EVENTS_"`
}

// RedisConfig настройки кэша ссылок в Redis
type RedisConfig struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB"`
	TTL      time.Duration `env:"TTL"`
}

// RetryConfig настройки повторных попыток генерации кода
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// ClicksConfig настройки асинхронного подсчёта переходов
type ClicksConfig struct {
	Workers   int `env:"WORKERS"`
	QueueSize int `env:"QUEUE_SIZE"`
}

// EventsConfig настройки публикации событий жизненного цикла
type EventsConfig struct {
	Driver         string        `env:"DRIVER"`
	KafkaBrokers   []string      `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic     string        `env:"KAFKA_TOPIC"`
	KafkaGroupID   string        `env:"KAFKA_GROUP_ID"`
	Consume        bool          `env:"CONSUME"`
	RabbitURL      string        `env:"RABBIT_URL"`
	RabbitExchange string        `env:"RABBIT_EXCHANGE"`
	PublishTimeout time.Duration `env:"PUBLISH_TIMEOUT"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:         URLPrefix("http://localhost:8080"),
		ShutdownTimeout: 10 * time.Second,
		Redis: RedisConfig{
			TTL: time.Hour,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
		},
		Clicks: ClicksConfig{
			Workers:   4,
			QueueSize: 1024,
		},
		Events: EventsConfig{
			Driver:         EventsDriverNone,
			KafkaTopic:     "url-events",
			KafkaGroupID:   "url-shortener-group",
			RabbitExchange: "url-events",
			PublishTimeout: 5 * time.Second,
		},
	}
}

// Load загружает конфигурацию из аргументов командной строки и окружения.
// Приоритет: переменные окружения, затем флаги, затем значения по умолчанию.
func Load(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fset := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fset.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fset.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fset.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to file storage")
	fset.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database connection string")
	fset.StringVar(&cfg.Redis.Addr, "r", cfg.Redis.Addr, "redis address for link cache")
	fset.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address to run gRPC health server")
	fset.StringVar(&cfg.Events.Driver, "e", cfg.Events.Driver, "events driver: none, log, kafka, rabbitmq")

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be positive, got %d", c.Retry.MaxAttempts)
	}
	if c.Clicks.Workers < 1 {
		return fmt.Errorf("clicks workers must be positive, got %d", c.Clicks.Workers)
	}
	if c.Clicks.QueueSize < 1 {
		return fmt.Errorf("clicks queue size must be positive, got %d", c.Clicks.QueueSize)
	}

	switch c.Events.Driver {
	case EventsDriverNone, EventsDriverLog:
	case EventsDriverKafka:
		if len(c.Events.KafkaBrokers) == 0 {
			return errors.New("kafka events driver requires at least one broker")
		}
	case EventsDriverRabbitMQ:
		if c.Events.RabbitURL == "" {
			return errors.New("rabbitmq events driver requires a connection URL")
		}
	default:
		return fmt.Errorf("unknown events driver: %s", c.Events.Driver)
	}

	return nil
}
