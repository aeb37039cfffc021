package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all configuration parameters of the application.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	ServerPort  string `env:"SERVER_PORT"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// Lifetime of a session established at login.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL,required"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"post_events"`
	}
}

// LoadConfig loads the configuration from environment variables. When a .env
// file is present it is loaded first (development convenience).
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse configuration from environment: %w", err)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	return &cfg, nil
}
