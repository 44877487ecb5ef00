package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gateway  GatewayConfig
	Matching MatchingConfig
	Sync     SyncConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
	Notifier NotifierConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	// URL selects the postgres store when set; empty falls back to the
	// in-memory store.
	URL string
}

type GatewayConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type MatchingConfig struct {
	Window          time.Duration
	AmountTolerance decimal.Decimal
	ReviewLookback  time.Duration
}

type SyncConfig struct {
	Interval          time.Duration
	StartupDelay      time.Duration
	BootstrapLookback time.Duration
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

type NotifierConfig struct {
	WebhookURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Gateway: GatewayConfig{
			BaseURL: getEnv("GATEWAY_BASE_URL", ""),
			Token:   getEnv("GATEWAY_API_TOKEN", ""),
			Timeout: getDurationEnv("GATEWAY_TIMEOUT", 15*time.Second),
		},
		Matching: MatchingConfig{
			Window:          getDurationEnv("MATCH_WINDOW", 24*time.Hour),
			AmountTolerance: getDecimalEnv("AMOUNT_TOLERANCE", decimal.NewFromFloat(0.01)),
			ReviewLookback:  getDurationEnv("REVIEW_LOOKBACK", 48*time.Hour),
		},
		Sync: SyncConfig{
			Interval:          getDurationEnv("SYNC_INTERVAL", 5*time.Minute),
			StartupDelay:      getDurationEnv("SYNC_STARTUP_DELAY", 10*time.Second),
			BootstrapLookback: getDurationEnv("BOOTSTRAP_LOOKBACK", 24*time.Hour),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 4),
			MaxRetries: getIntEnv("MAX_RETRIES", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
		Notifier: NotifierConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		log.Printf("Invalid decimal for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
