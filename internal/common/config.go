package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Telegram TelegramConfig
	Sheet    SheetConfig
	Worker   WorkerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds the listen addresses for the webhook and ops surfaces
type ServerConfig struct {
	GRPCAddr string
	HTTPAddr string
}

// TelegramConfig holds the bot credentials and API endpoint
type TelegramConfig struct {
	Token   string
	APIBase string
	Timeout time.Duration
}

// SheetConfig holds the workbook the lookups run against
type SheetConfig struct {
	Path        string
	SearchSheet string
	AnswerSheet string
}

// WorkerConfig holds the poll pacing and cache staleness windows
type WorkerConfig struct {
	PollInterval time.Duration
	TemplatesTTL time.Duration
	AnswersTTL   time.Duration
	OrdersTTL    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8081"),
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		Telegram: TelegramConfig{
			Token:   getEnv("TELEGRAM_TOKEN", ""),
			APIBase: getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
			Timeout: getEnvAsDuration("TELEGRAM_TIMEOUT", 10*time.Second),
		},
		Sheet: SheetConfig{
			Path:        getEnv("SPREADSHEET_PATH", ""),
			SearchSheet: getEnv("SEARCH_SHEET", "Производство"),
			AnswerSheet: getEnv("ANSWER_SHEET", "telegram-bot"),
		},
		Worker: WorkerConfig{
			PollInterval: getEnvAsDuration("WORKER_POLL_INTERVAL", 5*time.Second),
			TemplatesTTL: getEnvAsDuration("TEMPLATES_CACHE_TTL", 10*time.Minute),
			AnswersTTL:   getEnvAsDuration("ANSWERS_CACHE_TTL", 10*time.Minute),
			OrdersTTL:    getEnvAsDuration("ORDERS_CACHE_TTL", time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.Telegram.Token == "" {
		return NewAppError("CONFIG_ERROR", "TELEGRAM_TOKEN is required", ErrValidation)
	}
	if c.Sheet.Path == "" {
		return NewAppError("CONFIG_ERROR", "SPREADSHEET_PATH is required", ErrValidation)
	}
	return nil
}
