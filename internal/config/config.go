package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	// Core
	BotToken string `env:"BOT_TOKEN,required,notEmpty"`

	// Document store
	StoreDriver string `env:"STORE_DRIVER" envDefault:"mongo"`
	MongoURI    string `env:"MONGO_URI"`
	DBName      string `env:"DB_NAME" envDefault:"gemigram"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Gemini
	GenAIKey   string `env:"GENAI_API_KEY,required,notEmpty"`
	GenAIModel string `env:"GENAI_MODEL" envDefault:"gemini-1.5-flash"`

	// Google Custom Search
	SearchAPIKey string `env:"GOOGLE_API_KEY,required,notEmpty"`
	SearchCX     string `env:"CX,required,notEmpty"`

	// Server
	Port int `env:"PORT" envDefault:"8080"`

	// Bot behavior
	Workers            int  `env:"BOT_WORKERS" envDefault:"1"`
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`

	// Logging
	LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
	LogTelegramChatID    int64  `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError        int    `env:"LOG_TOPIC_ERROR"`
	LogTopicRegistration int    `env:"LOG_TOPIC_REGISTRATION"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, relying on environment", "error", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required for the mongo store")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Workers < 1 {
		return fmt.Errorf("BOT_WORKERS must be positive, got %d", c.Workers)
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog.Level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
