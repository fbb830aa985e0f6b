package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Quota - квота ограничителя частоты: Limit операций за Window
type Quota struct {
	Limit  int
	Window time.Duration
}

// Config - структура для хранения конфигурации приложения
type Config struct {
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DBMaxConns    int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config. Пустой адрес отключает Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config для уведомлений о новых наблюдениях
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Sightings
	SightingTTL   time.Duration `env:"SIGHTING_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`

	// Device token salt rotation
	SaltRotationOffset time.Duration `env:"SALT_ROTATION_TIME" envDefault:"00:00"`
	SaltGrace          time.Duration `env:"SALT_GRACE" envDefault:"10m"`

	// Rate limits
	IncidentQuota Quota `env:"RATE_LIMIT_INCIDENT" envDefault:"10/1h"`
	SightingQuota Quota `env:"RATE_LIMIT_SIGHTING" envDefault:"20/1h"`
	VoteQuota     Quota `env:"RATE_LIMIT_VOTE" envDefault:"120/1h"`

	IncidentCacheTTL time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"1h"`
	DepartmentsFile  string        `env:"DEPARTMENTS_FILE"`

	// API Keys клиентских приложений (не пользователей)
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		StorageDriver:     getEnv("STORAGE_DRIVER", StoragePostgres),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		SightingTTL:       getEnvAsDuration("SIGHTING_TTL", 30*time.Minute),
		SweepInterval:     getEnvAsDuration("SWEEP_INTERVAL", 5*time.Minute),
		SaltGrace:         getEnvAsDuration("SALT_GRACE", 10*time.Minute),
		IncidentCacheTTL:  getEnvAsDuration("INCIDENT_CACHE_TTL", time.Hour),
		DepartmentsFile:   os.Getenv("DEPARTMENTS_FILE"),
	}

	var err error
	if cfg.SaltRotationOffset, err = ParseTimeOfDay(getEnv("SALT_ROTATION_TIME", "00:00")); err != nil {
		return nil, fmt.Errorf("SALT_ROTATION_TIME: %w", err)
	}
	if cfg.IncidentQuota, err = ParseQuota(getEnv("RATE_LIMIT_INCIDENT", "10/1h")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_INCIDENT: %w", err)
	}
	if cfg.SightingQuota, err = ParseQuota(getEnv("RATE_LIMIT_SIGHTING", "20/1h")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_SIGHTING: %w", err)
	}
	if cfg.VoteQuota, err = ParseQuota(getEnv("RATE_LIMIT_VOTE", "120/1h")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_VOTE: %w", err)
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
		if c.DBMaxConns <= 0 {
			return fmt.Errorf("DB_MAX_CONNS must be positive")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.SightingTTL <= 0 {
		return fmt.Errorf("SIGHTING_TTL must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	if c.SaltGrace < 0 || c.SaltGrace >= 24*time.Hour {
		return fmt.Errorf("SALT_GRACE must be within [0, 24h)")
	}
	return nil
}

// ParseQuota разбирает квоту вида "10/1h"
func ParseQuota(s string) (Quota, error) {
	limitStr, windowStr, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Quota{}, fmt.Errorf("quota %q must look like N/duration", s)
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return Quota{}, fmt.Errorf("quota %q: limit must be a positive integer", s)
	}
	window, err := time.ParseDuration(windowStr)
	if err != nil || window <= 0 {
		return Quota{}, fmt.Errorf("quota %q: window must be a positive duration", s)
	}
	return Quota{Limit: limit, Window: window}, nil
}

// ParseTimeOfDay разбирает время суток "HH:MM" в смещение от полуночи UTC
func ParseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("time of day %q must look like HH:MM", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
